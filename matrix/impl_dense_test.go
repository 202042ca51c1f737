// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/discretedp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			assert.Equal(t, tc.rows, r)
			assert.Equal(t, tc.cols, c)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j), "new Dense must be zero at (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m := MustDense(t, 2, 3)
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrIndexOutOfBounds, "deprecated alias must still match")
}

func TestDense_NumericPolicy(t *testing.T) {
	t.Run("default rejects all non-finite", func(t *testing.T) {
		m := MustDense(t, 1, 1)
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			assert.ErrorIs(t, m.Set(0, 0, v), matrix.ErrNaNInf)
		}
	})
	t.Run("allow -Inf keeps NaN and +Inf rejected", func(t *testing.T) {
		m, err := matrix.NewDense(1, 1, matrix.WithAllowNegInf())
		require.NoError(t, err)
		assert.NoError(t, m.Set(0, 0, math.Inf(-1)))
		assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
		assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	})
	t.Run("validation disabled", func(t *testing.T) {
		m, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		assert.NoError(t, m.Set(0, 0, math.NaN()))
	})
}

func TestNewDenseFromRows(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	CompareClose(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m, 0)

	_, err := matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty input")
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "ragged input")
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "policy applies on ingestion")

	neg, err := matrix.NewDenseFromRows([][]float64{{math.Inf(-1), 1}}, matrix.WithAllowNegInf())
	require.NoError(t, err)
	assert.True(t, math.IsInf(MustAt(t, neg, 0, 0), -1))
}

func TestDense_CloneAndRowAreIndependent(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 100))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "clone must not alias storage")

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = -1
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0), "row copy must not alias storage")

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id, 0)

	_, err = matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
