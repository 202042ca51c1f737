// Package discretedp solves finite, infinite-horizon, discounted Markov
// decision problems.
//
// A problem is given by a reward matrix R[s,a], a transition tensor
// Q[s,a,s'] and a discount factor β in (0,1). The optimal value function V*
// is the unique fixed point of the Bellman operator
//
//	T(V)(s) = max_a { R[s,a] + β·Σ_s' Q[s,a,s']·V(s') }
//
// and an optimal policy is greedy with respect to V*.
//
// Subpackages:
//
//	matrix/   - dense row-major matrices, validators, LU and linear solve
//	ddp/      - the DiscreteDP engine: Bellman operator, greedy policy,
//	            value function iteration, policy evaluation, policy
//	            function iteration, parameter sweeps
//	models/   - ready-made models (cake eating)
//	examples/ - runnable programs
//
// Quick start:
//
//	d, err := ddp.NewFromSlices(r, q, 0.95)
//	res, err := d.SolvePFI(ddp.DefaultPFIOptions())
//	fmt.Println(res.Policy, res.Values)
//
// Design notes:
//
//   - Non-convergence is a result (Converged=false), not an error.
//   - Infeasible actions carry reward −Inf and are never selected.
//   - Engines are immutable after construction and safe for concurrent use.
//   - Logging goes through an injected *slog.Logger; the default discards.
//
//	go get github.com/katalvlaran/discretedp
package discretedp
