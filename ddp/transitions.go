package ddp

import (
	"fmt"

	"github.com/katalvlaran/discretedp/matrix"
)

// Transitions is the transition tensor Q[s,a,s'] of a finite MDP.
//
// It is stored as one dense nActions×nNext kernel per state, so that the
// expected continuation values of every action in state s are a single
// matrix-vector product Q[s]·V.
type Transitions struct {
	nStates, nActions, nNext int
	kernels                  []*matrix.Dense // len == nStates; each nActions×nNext
}

// NewTransitions allocates a zero tensor of shape (nStates, nActions, nNext).
// All dimensions must be positive.
func NewTransitions(nStates, nActions, nNext int) (*Transitions, error) {
	if nStates <= 0 || nActions <= 0 || nNext <= 0 {
		return nil, fmt.Errorf("%w: transition shape (%d,%d,%d) must be positive",
			ErrInvalidParameter, nStates, nActions, nNext)
	}
	q := &Transitions{
		nStates:  nStates,
		nActions: nActions,
		nNext:    nNext,
		kernels:  make([]*matrix.Dense, nStates),
	}
	for s := range q.kernels {
		k, err := matrix.NewDense(nActions, nNext)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		q.kernels[s] = k
	}

	return q, nil
}

// NewTransitionsFromSlices copies q[s][a][s'] into a Transitions tensor.
// The input must be rectangular and finite.
func NewTransitionsFromSlices(q [][][]float64) (*Transitions, error) {
	if len(q) == 0 || len(q[0]) == 0 || len(q[0][0]) == 0 {
		return nil, fmt.Errorf("%w: empty transition tensor", ErrInvalidParameter)
	}
	nActions, nNext := len(q[0]), len(q[0][0])
	for s := range q {
		if len(q[s]) != nActions {
			return nil, fmt.Errorf("%w: Q[%d] has %d actions, want %d",
				ErrInvalidParameter, s, len(q[s]), nActions)
		}
		for a := range q[s] {
			if len(q[s][a]) != nNext {
				return nil, fmt.Errorf("%w: Q[%d][%d] has length %d, want %d",
					ErrInvalidParameter, s, a, len(q[s][a]), nNext)
			}
		}
	}

	out := &Transitions{
		nStates:  len(q),
		nActions: nActions,
		nNext:    nNext,
		kernels:  make([]*matrix.Dense, len(q)),
	}
	for s := range q {
		k, err := matrix.NewDenseFromRows(q[s])
		if err != nil {
			return nil, fmt.Errorf("%w: Q[%d]: %w", ErrInvalidParameter, s, err)
		}
		out.kernels[s] = k
	}

	return out, nil
}

// Shape returns (nStates, nActions, nNext).
func (q *Transitions) Shape() (nStates, nActions, nNext int) {
	return q.nStates, q.nActions, q.nNext
}

// At returns Q[s,a,next].
func (q *Transitions) At(s, a, next int) (float64, error) {
	if s < 0 || s >= q.nStates {
		return 0, fmt.Errorf("Transitions.At: state %d: %w", s, matrix.ErrOutOfRange)
	}

	return q.kernels[s].At(a, next)
}

// Set assigns Q[s,a,next] = p. Non-finite values are rejected.
func (q *Transitions) Set(s, a, next int, p float64) error {
	if s < 0 || s >= q.nStates {
		return fmt.Errorf("Transitions.Set: state %d: %w", s, matrix.ErrOutOfRange)
	}

	return q.kernels[s].Set(a, next, p)
}

// Row returns a copy of the distribution Q[s,a,·].
func (q *Transitions) Row(s, a int) ([]float64, error) {
	if s < 0 || s >= q.nStates {
		return nil, fmt.Errorf("Transitions.Row: state %d: %w", s, matrix.ErrOutOfRange)
	}

	return q.kernels[s].Row(a)
}

// Clone returns a deep copy of q.
func (q *Transitions) Clone() *Transitions {
	out := &Transitions{
		nStates:  q.nStates,
		nActions: q.nActions,
		nNext:    q.nNext,
		kernels:  make([]*matrix.Dense, q.nStates),
	}
	for s, k := range q.kernels {
		out.kernels[s] = k.Clone().(*matrix.Dense)
	}

	return out
}

// validate checks every Q[s,a,·] against the distribution contract.
func (q *Transitions) validate(eps float64) error {
	for s := 0; s < q.nStates; s++ {
		for a := 0; a < q.nActions; a++ {
			row, err := q.kernels[s].Row(a)
			if err != nil {
				return err
			}
			if err = matrix.ValidateDistribution(row, eps); err != nil {
				return fmt.Errorf("Q[%d,%d,·]: %w", s, a, err)
			}
		}
	}

	return nil
}
