package ddp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/discretedp/matrix"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Operation tags used in error messages.
const (
	opNew      = "New"
	opBellman  = "ApplyBellman"
	opGreedy   = "GreedyPolicy"
	opVFI      = "SolveVFI"
	opEvaluate = "EvaluatePolicy"
	opPFI      = "SolvePFI"
)

// DiscreteDP is a finite Markov decision problem with rewards R, transitions
// Q and discount factor β. It is immutable after New and safe for concurrent
// use; every solve call works on its own value and policy vectors.
type DiscreteDP struct {
	nStates  int
	nActions int
	beta     float64
	rewards  []float64    // row-major n×m copy of R
	q        *Transitions // private deep copy of Q
	opts     options
}

// New validates (R, Q, β) and returns the engine.
//
// Steps:
//  1. r and q must be non-nil; n_states = r.Rows(), n_actions = r.Cols().
//  2. β must satisfy 0 < β < 1.
//  3. q.Shape() must equal (n_states, n_actions, n_states).
//  4. Rewards must not be NaN or +Inf; -Inf marks an infeasible action and
//     every state needs at least one feasible action.
//  5. Unless WithoutTransitionCheck is given, each Q[s,a,·] must be a
//     probability distribution within DefaultTransitionEpsilon.
//
// Every failure wraps ErrInvalidParameter. R and Q are copied.
func New(r matrix.Matrix, q *Transitions, beta float64, opts ...Option) (*DiscreteDP, error) {
	if r == nil || q == nil {
		return nil, newErrorf("nil reward matrix or transition tensor")
	}
	if math.IsNaN(beta) || beta <= 0 || beta >= 1 {
		return nil, newErrorf("beta=%g must lie in (0,1)", beta)
	}

	n, m := r.Rows(), r.Cols()
	if n <= 0 || m <= 0 {
		return nil, newErrorf("reward matrix shape (%d,%d) must be positive", n, m)
	}
	if qs, qa, qn := q.Shape(); qs != n || qa != m || qn != n {
		return nil, newErrorf("Q shape (%d,%d,%d) is not compatible with R shape (%d,%d)", qs, qa, qn, n, m)
	}

	o := gatherOptions(opts...)
	rewards, err := copyRewards(r)
	if err != nil {
		return nil, err
	}
	if o.checkTransitions {
		if err = q.validate(o.eps); err != nil {
			return nil, newErrorf("%w", err)
		}
	}

	return &DiscreteDP{
		nStates:  n,
		nActions: m,
		beta:     beta,
		rewards:  rewards,
		q:        q.Clone(),
		opts:     o,
	}, nil
}

// NewFromSlices is New for literal inputs r[s][a] and q[s][a][s'].
func NewFromSlices(r [][]float64, q [][][]float64, beta float64, opts ...Option) (*DiscreteDP, error) {
	rm, err := matrix.NewDenseFromRows(r, matrix.WithAllowNegInf())
	if err != nil {
		return nil, newErrorf("R: %w", err)
	}
	qt, err := NewTransitionsFromSlices(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return New(rm, qt, beta, opts...)
}

func newErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w", opNew, ErrInvalidParameter, fmt.Errorf(format, args...))
}

// copyRewards flattens R and enforces the reward contract.
func copyRewards(r matrix.Matrix) ([]float64, error) {
	n, m := r.Rows(), r.Cols()
	out := make([]float64, n*m)
	for s := 0; s < n; s++ {
		feasible := false
		for a := 0; a < m; a++ {
			v, err := r.At(s, a)
			if err != nil {
				return nil, newErrorf("R: %w", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 1) {
				return nil, newErrorf("R[%d,%d]=%g must be finite or -Inf", s, a, v)
			}
			if !math.IsInf(v, -1) {
				feasible = true
			}
			out[s*m+a] = v
		}
		if !feasible {
			return nil, newErrorf("state %d has no feasible action", s)
		}
	}

	return out, nil
}

// NumStates returns n_states.
func (d *DiscreteDP) NumStates() int { return d.nStates }

// NumActions returns n_actions.
func (d *DiscreteDP) NumActions() int { return d.nActions }

// Beta returns the discount factor.
func (d *DiscreteDP) Beta() float64 { return d.beta }

// Reward returns R[s,a].
func (d *DiscreteDP) Reward(s, a int) (float64, error) {
	if s < 0 || s >= d.nStates || a < 0 || a >= d.nActions {
		return 0, fmt.Errorf("Reward(%d,%d): %w", s, a, matrix.ErrOutOfRange)
	}

	return d.rewards[s*d.nActions+a], nil
}

// ApplyBellman returns T(v), where T(v)(s) = max_a { R[s,a] + β·Σ_s' Q[s,a,s']·v[s'] }.
// v must have length n_states and finite entries. v is not modified.
func (d *DiscreteDP) ApplyBellman(v []float64) ([]float64, error) {
	if err := d.checkValues(opBellman, v); err != nil {
		return nil, err
	}
	out := make([]float64, d.nStates)
	err := d.forEachState(func(s int) error {
		q, err := d.actionValues(s, v)
		if err != nil {
			return err
		}
		out[s] = floats.Max(q)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBellman, err)
	}

	return out, nil
}

// GreedyPolicy returns, for every state, the action maximizing
// R[s,a] + β·Σ_s' Q[s,a,s']·v[s']. Exact ties resolve to the lowest index.
func (d *DiscreteDP) GreedyPolicy(v []float64) (Policy, error) {
	if err := d.checkValues(opGreedy, v); err != nil {
		return nil, err
	}
	out := make(Policy, d.nStates)
	err := d.forEachState(func(s int) error {
		q, err := d.actionValues(s, v)
		if err != nil {
			return err
		}
		out[s] = floats.MaxIdx(q) // first index among equal maxima

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGreedy, err)
	}

	return out, nil
}

// actionValues returns R[s,·] + β·Q[s]·v as a fresh slice of length n_actions.
func (d *DiscreteDP) actionValues(s int, v []float64) ([]float64, error) {
	ev, err := matrix.MatVec(d.q.kernels[s], v)
	if err != nil {
		return nil, err
	}
	floats.Scale(d.beta, ev)
	floats.Add(ev, d.rewards[s*d.nActions:(s+1)*d.nActions])

	return ev, nil
}

// checkValues enforces len(v) == n_states and finite entries.
func (d *DiscreteDP) checkValues(op string, v []float64) error {
	if len(v) != d.nStates {
		return fmt.Errorf("%s: %w: value vector has length %d, want %d",
			op, ErrInvalidParameter, len(v), d.nStates)
	}
	for s, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: %w: v[%d]=%g is not finite", op, ErrInvalidParameter, s, x)
		}
	}

	return nil
}

// forEachState runs fn for s = 0..n-1, sequentially or over contiguous chunks
// when parallelism is enabled. fn must only write state-indexed outputs.
func (d *DiscreteDP) forEachState(fn func(s int) error) error {
	workers := min(d.opts.workers, d.nStates)
	if workers <= 1 {
		for s := 0; s < d.nStates; s++ {
			if err := fn(s); err != nil {
				return err
			}
		}

		return nil
	}

	chunk := (d.nStates + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < d.nStates; lo += chunk {
		hi := min(lo+chunk, d.nStates)
		g.Go(func() error {
			for s := lo; s < hi; s++ {
				if err := fn(s); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// logger returns the configured logger tagged with the model dimensions.
func (d *DiscreteDP) logger() *slog.Logger {
	return d.opts.logger.With(
		slog.Int("states", d.nStates),
		slog.Int("actions", d.nActions),
		slog.Float64("beta", d.beta),
	)
}
