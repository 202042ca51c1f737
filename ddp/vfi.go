package ddp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
)

// supNorm is the L∞ order passed to floats.Distance.
var supNorm = math.Inf(1)

// SolveVFI runs Value Function Iteration from V₀ = 0.
//
// Each step computes V_{k+1} = T(V_k). The loop stops with Converged=true as
// soon as ‖V_{k+1} − V_k‖∞ < Tol, or with Converged=false after MaxIter steps.
// In both cases Values is the last iterate and Policy its greedy policy.
// Because T is a β-contraction in the sup-norm, the stopping rule bounds the
// distance to the fixed point by β·Tol/(1−β).
//
// Errors: ErrInvalidParameter if Tol ≤ 0 (or non-finite) or MaxIter < 1.
// Running out of iterations is reported through the result, not as an error.
func (d *DiscreteDP) SolveVFI(o VFIOptions) (*VFIResult, error) {
	if math.IsNaN(o.Tol) || math.IsInf(o.Tol, 0) || o.Tol <= 0 {
		return nil, fmt.Errorf("%s: %w: tol=%g must be positive and finite", opVFI, ErrInvalidParameter, o.Tol)
	}
	if o.MaxIter < 1 {
		return nil, fmt.Errorf("%s: %w: max iterations %d must be >= 1", opVFI, ErrInvalidParameter, o.MaxIter)
	}

	res := &VFIResult{Residual: math.Inf(1)}
	v := make([]float64, d.nStates)
	if o.TrackHistory {
		res.History = make([][]float64, 0, min(o.MaxIter, DefaultVFIMaxIter)+1)
		res.History = append(res.History, v)
	}

	for res.Iterations < o.MaxIter {
		next, err := d.ApplyBellman(v)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opVFI, res.Iterations, err)
		}
		res.Iterations++
		res.Residual = floats.Distance(v, next, supNorm)
		v = next // ApplyBellman allocates, so earlier iterates stay intact
		if o.TrackHistory {
			res.History = append(res.History, v)
		}
		if res.Residual < o.Tol {
			res.Converged = true
			break
		}
	}

	policy, err := d.GreedyPolicy(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVFI, err)
	}
	res.Values = v
	res.Policy = policy

	log := d.logger().With(slog.Int("iterations", res.Iterations), slog.Float64("residual", res.Residual))
	if res.Converged {
		log.Debug("value function iteration converged")
	} else {
		log.Warn("value function iteration did not converge", slog.Float64("tol", o.Tol))
	}

	return res, nil
}
