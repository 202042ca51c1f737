package ddp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/discretedp/matrix"
)

// EvaluatePolicy returns the exact value of following p forever:
// the solution of (I − β·Q_π)·V = R_π with R_π[s] = R[s,p[s]] and
// Q_π[s,s'] = Q[s,p[s],s'].
//
// Errors:
//   - ErrInvalidParameter if len(p) != n_states, an action is out of range,
//     or p selects an infeasible (-Inf reward) action.
//   - ErrSingularSystem if the configured LinearSolver fails or returns
//     non-finite values.
func (d *DiscreteDP) EvaluatePolicy(p Policy) ([]float64, error) {
	if err := d.checkPolicy(p); err != nil {
		return nil, err
	}

	n := d.nStates
	rPi := make([]float64, n)
	qPi, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	for s, a := range p {
		rPi[s] = d.rewards[s*d.nActions+a]
		row, err := d.q.kernels[s].Row(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opEvaluate, err)
		}
		for next, prob := range row {
			if err = qPi.Set(s, next, prob); err != nil {
				return nil, fmt.Errorf("%s: %w", opEvaluate, err)
			}
		}
	}

	system, err := d.policySystem(qPi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	v, err := d.opts.solver.Solve(system, rPi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opEvaluate, ErrSingularSystem, err)
	}
	if len(v) != n {
		return nil, fmt.Errorf("%s: %w: solver returned %d values, want %d", opEvaluate, ErrSingularSystem, len(v), n)
	}
	for s, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%s: %w: V[%d]=%g", opEvaluate, ErrSingularSystem, s, x)
		}
	}

	return v, nil
}

// policySystem forms I − β·Q_π.
func (d *DiscreteDP) policySystem(qPi matrix.Matrix) (matrix.Matrix, error) {
	scaled, err := matrix.Scale(qPi, d.beta)
	if err != nil {
		return nil, err
	}
	id, err := matrix.NewIdentity(d.nStates)
	if err != nil {
		return nil, err
	}

	return matrix.Sub(id, scaled)
}

// checkPolicy enforces shape, range and feasibility of p.
func (d *DiscreteDP) checkPolicy(p Policy) error {
	if len(p) != d.nStates {
		return fmt.Errorf("%s: %w: policy has length %d, want %d", opEvaluate, ErrInvalidParameter, len(p), d.nStates)
	}
	for s, a := range p {
		if a < 0 || a >= d.nActions {
			return fmt.Errorf("%s: %w: policy[%d]=%d outside [0,%d)", opEvaluate, ErrInvalidParameter, s, a, d.nActions)
		}
		if math.IsInf(d.rewards[s*d.nActions+a], -1) {
			return fmt.Errorf("%s: %w: policy[%d]=%d is infeasible", opEvaluate, ErrInvalidParameter, s, a)
		}
	}

	return nil
}

// initialPolicy is the PFI seed: action 0 everywhere, except in states where
// action 0 is infeasible, which start from their lowest feasible action.
func (d *DiscreteDP) initialPolicy() Policy {
	p := make(Policy, d.nStates)
	for s := range p {
		for a := 0; a < d.nActions; a++ {
			if !math.IsInf(d.rewards[s*d.nActions+a], -1) {
				p[s] = a
				break
			}
		}
	}

	return p
}

// SolvePFI runs Policy Function Iteration.
//
// Starting from initialPolicy, each round evaluates the current policy
// exactly and replaces it by its greedy policy. The loop stops with
// Converged=true when the greedy policy equals the current one (a fixed
// point, hence optimal), or with Converged=false after MaxIter rounds; then
// Policy is the last improved policy and Values its exact value.
//
// Errors: ErrInvalidParameter if MaxIter < 1; ErrSingularSystem from
// EvaluatePolicy, propagated immediately.
func (d *DiscreteDP) SolvePFI(o PFIOptions) (*PFIResult, error) {
	if o.MaxIter < 1 {
		return nil, fmt.Errorf("%s: %w: max iterations %d must be >= 1", opPFI, ErrInvalidParameter, o.MaxIter)
	}

	res := &PFIResult{}
	policy := d.initialPolicy()
	for res.Iterations < o.MaxIter {
		v, err := d.EvaluatePolicy(policy)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opPFI, res.Iterations, err)
		}
		next, err := d.GreedyPolicy(v)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opPFI, res.Iterations, err)
		}
		res.Iterations++
		if next.Equal(policy) {
			res.Converged = true
			res.Values = v
			res.Policy = next
			d.logger().Debug("policy function iteration converged", slog.Int("iterations", res.Iterations))

			return res, nil
		}
		policy = next
	}

	v, err := d.EvaluatePolicy(policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPFI, err)
	}
	res.Values = v
	res.Policy = policy
	d.logger().Warn("policy function iteration did not converge", slog.Int("iterations", res.Iterations))

	return res, nil
}
