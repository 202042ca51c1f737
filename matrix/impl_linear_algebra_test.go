// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/discretedp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSub_FastPathAndFallbackAgree(t *testing.T) {
	a := FromRows(t, [][]float64{{5, 6}, {7, 8}})
	b := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	want := [][]float64{{4, 4}, {4, 4}}

	fast, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareClose(t, want, fast, 0)

	slow, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	CompareClose(t, want, slow, 0)
}

func TestSub_DimensionMismatch(t *testing.T) {
	_, err := matrix.Sub(MustDense(t, 2, 2), MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := FromRows(t, [][]float64{{1, -2}, {0.5, 4}})
	got, err := matrix.Scale(hide{a}, 0.5)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0.5, -1}, {0.25, 2}}, got, 0)
	assert.Equal(t, 1.0, MustAt(t, a, 0, 0), "input must not be mutated")
}

func TestMatVec(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y, "fallback must match fast path")

	_, err = matrix.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU_Reconstruction(t *testing.T) {
	a := DiagonallyDominant(t, 5, 7)
	l, u, err := matrix.LU(a)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 1.0, MustAt(t, l, i, i), "L must have a unit diagonal")
		for j := i + 1; j < 5; j++ {
			assert.Zero(t, MustAt(t, l, i, j), "L must be lower triangular")
			assert.Zero(t, MustAt(t, u, j, i), "U must be upper triangular")
		}
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			var sum float64
			for k := 0; k < 5; k++ {
				sum += MustAt(t, l, i, k) * MustAt(t, u, k, j)
			}
			assert.InDelta(t, MustAt(t, a, i, j), sum, 1e-12, "L*U must reproduce A at (%d,%d)", i, j)
		}
	}
}

func TestLU_Errors(t *testing.T) {
	_, _, err := matrix.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.LU(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.LU(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve_Known2x2(t *testing.T) {
	// 2x + y = 5, x + 3y = 10  =>  x = 1, y = 3
	a := FromRows(t, [][]float64{{2, 1}, {1, 3}})
	x, err := matrix.Solve(a, []float64{5, 10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3}, x, 1e-12)
}

func TestSolve_ResidualRandom(t *testing.T) {
	for _, n := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagonallyDominant(t, n, int64(n))
			b := make([]float64, n)
			for i := range b {
				b[i] = float64(i) - 1.5
			}
			x, err := matrix.Solve(hide{a}, b)
			require.NoError(t, err)

			ax, err := matrix.MatVec(a, x)
			require.NoError(t, err)
			assert.InDeltaSlice(t, b, ax, 1e-10)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := matrix.Solve(MustDense(t, 2, 2), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(MustDense(t, 2, 2), []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular, "zero matrix has a zero pivot")
	_, err = matrix.Solve(MustDense(t, 2, 3), []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
