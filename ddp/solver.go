package ddp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/discretedp/matrix"
	"gonum.org/v1/gonum/mat"
)

// LinearSolver solves the square system a·x = b for x.
// Implementations must not modify a or b.
type LinearSolver interface {
	Solve(a matrix.Matrix, b []float64) ([]float64, error)
}

// LUSolver solves with the deterministic Doolittle LU of package matrix.
// No pivoting: identical inputs give bit-identical outputs. I − β·Q_π is
// strictly diagonally dominant for stochastic Q_π and β<1, so no zero pivot
// occurs on valid models.
type LUSolver struct{}

// Solve implements LinearSolver.
func (LUSolver) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	return matrix.Solve(a, b)
}

// GonumSolver solves with gonum's LU factorization with partial pivoting.
// Systems whose condition number exceeds mat.ConditionTolerance are reported
// as singular.
type GonumSolver struct{}

// Solve implements LinearSolver.
func (GonumSolver) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, err
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			data[i*n+j] = v
		}
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, data))
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, rhs)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("condition number %g: %w", float64(cond), matrix.ErrSingular)
		}

		return nil, err
	}

	out := make([]float64, n)
	copy(out, x.RawVector().Data)

	return out, nil
}
