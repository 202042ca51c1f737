// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/discretedp/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a Dense from literal rows or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose checks every cell of got against want within atol.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, got, i, j), atol, "cell (%d,%d)", i, j)
		}
	}
}

// DiagonallyDominant returns a random n×n strictly diagonally dominant matrix,
// which Doolittle LU factorizes without a zero pivot.
func DiagonallyDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		var off float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			off += math.Abs(v)
			require.NoError(t, m.Set(i, j, v))
		}
		require.NoError(t, m.Set(i, i, off+1+rng.Float64()))
	}

	return m
}
