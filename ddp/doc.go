// Package ddp solves discrete dynamic-programming problems (finite Markov
// decision processes) of the form
//
//	V(s) = max_a { R(s,a) + β·Σ_s' Q(s,a,s')·V(s') }
//
// by Value Function Iteration (VFI) and Policy Function Iteration (PFI).
//
// Model:
//
//	– R: reward matrix (n_states × n_actions). -Inf marks an infeasible action;
//	  every state needs at least one feasible action.
//	– Q: transition tensor (n_states × n_actions × n_states); every Q[s,a,·] is
//	  a probability distribution (validated at construction unless disabled).
//	– β: discount factor in the open interval (0,1).
//
// Algorithms:
//
//	– ApplyBellman:   T(V)(s) = max_a { R(s,a) + β·Q(s,a,·)·V }.
//	– GreedyPolicy:   arg-max of the same expression; ties go to the lowest action index.
//	– SolveVFI:       V₀ = 0, V_{k+1} = T(V_k) until ‖V_{k+1} − V_k‖∞ < tol.
//	– EvaluatePolicy: exact value of a fixed policy, solving (I − β·Q_π)·V = R_π.
//	– SolvePFI:       evaluate / improve from the all-zero policy until the policy is stable.
//
// Complexity (n = states, m = actions):
//
//	– Bellman / greedy step: O(n²·m) time, O(n + m) extra space.
//	– VFI: O(K·n²·m) for K iterations; K grows like log(tol)/log(β).
//	– Policy evaluation: O(n³) for the dense LU solve, O(n²) space.
//	– PFI: O(J·(n³ + n²·m)) for J improvement steps, usually a handful.
//
// Errors (sentinel):
//
//	– ErrInvalidParameter if β ∉ (0,1), shapes disagree, rewards/transitions are
//	  invalid, or an argument vector/policy has the wrong length or range.
//	– ErrSingularSystem   if (I − β·Q_π) cannot be solved.
//
// Running out of iterations is not an error: VFIResult and PFIResult carry
// Converged and Iterations so callers can tell the two terminal states apart.
//
// Concurrency:
//
// A *DiscreteDP is immutable after New and safe for concurrent use. The
// per-state Bellman loop can be split across goroutines with
// WithParallelism; Sweep solves one model for many discount factors at once.
//
// Example usage:
//
//	d, err := ddp.NewFromSlices(
//	    [][]float64{{5}},
//	    [][][]float64{{{1}}},
//	    0.9,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := d.SolveVFI(ddp.DefaultVFIOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Values, res.Policy, res.Converged) // [50] [0] true
package ddp
