// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, scalar scaling, matrix-vector products, Doolittle
// LU factorization and LU-based linear solves. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf at the facade.
//   - Fast paths operate on *Dense flat storage; other implementations are
//     handled through At/Set in fixed i→j order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub    = "Sub"
	opScale  = "Scale"
	opMatVec = "MatVec"
	opLU     = "LU"
	opSolve  = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	// The result holds differences of already-accepted values; it carries no policy.
	res, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// Scale multiplies every element by alpha and returns a fresh Dense result.
// Inputs remain immutable. Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(src.r, src.c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range src.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Use *Dense to keep a single pass per row with flat indexing.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - No pivoting: results are bit-for-bit reproducible. Strictly diagonally
//     dominant systems (e.g. I − β·P for a stochastic P and β<1) never produce
//     a zero pivot.
func LU(m Matrix) (Matrix, Matrix, error) {
	l, u, err := luDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// luDense is the shared Doolittle kernel used by LU and Solve.
func luDense(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, err
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, err
	}

	n := a.r
	lRaw, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, err
	}
	uRaw, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		lRaw.data[i*n+i] = 1.0
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lRaw.data[baseI+k] * uRaw.data[k*n+j]
			}
			uRaw.data[baseI+j] = a.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		pivot = uRaw.data[baseI+i]
		if pivot == ZeroPivot || math.IsNaN(pivot) {
			return nil, nil, fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += lRaw.data[baseJ+k] * uRaw.data[k*n+i]
			}
			lRaw.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return lRaw, uRaw, nil
}

// Solve returns x such that A*x = b, via Doolittle LU and two triangular solves.
//
// Implementation:
//   - Stage 1: Validate A (not nil, square) and len(b) == n.
//   - Stage 2: Factorize A = L*U (zero-pivot guard).
//   - Stage 3: Forward substitution L*y = b, backward substitution U*x = y.
//   - Stage 4: Reject non-finite solutions as numerically singular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3) for the factorization + O(n^2) for the solves, Space O(n^2).
//
// AI-Hints:
//   - Prefer Solve over forming an inverse; it is cheaper and more accurate.
func Solve(m Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	l, u, err := luDense(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var i, k, base int
	var sum float64
	y := make([]float64, n)
	// Forward substitution: L*y = b (unit diagonal)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	x := make([]float64, n)
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[base+i]
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("x[%d]=%g: %w", i, x[i], ErrSingular))
		}
	}

	return x, nil
}
