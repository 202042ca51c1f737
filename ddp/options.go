package ddp

import (
	"log/slog"
	"math"
)

// Panic messages for nonsensical option values (programmer error).
const (
	panicEpsilonInvalid = "ddp: WithTransitionEpsilon: eps must be finite, non-negative"
	panicSolverNil      = "ddp: WithLinearSolver: solver must not be nil"
	panicWorkersInvalid = "ddp: WithParallelism: workers must be >= 1"
)

// Option configures a DiscreteDP at construction time.
type Option func(*options)

// options holds the resolved construction configuration.
type options struct {
	checkTransitions bool         // validate every Q[s,a,·] as a distribution
	eps              float64      // tolerance of the distribution check
	logger           *slog.Logger // solver progress; discarded by default
	solver           LinearSolver // backend used by EvaluatePolicy
	workers          int          // goroutines used by the per-state loop
}

func defaultOptions() options {
	return options{
		checkTransitions: true,
		eps:              DefaultTransitionEpsilon,
		logger:           slog.New(slog.DiscardHandler),
		solver:           LUSolver{},
		workers:          1,
	}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// WithTransitionEpsilon sets the tolerance used when checking that each
// Q[s,a,·] sums to one. Panics if eps is negative or non-finite.
func WithTransitionEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithoutTransitionCheck skips the stochastic-matrix validation of Q.
// Only shape and finiteness are checked; the caller vouches for the rest.
func WithoutTransitionCheck() Option {
	return func(o *options) { o.checkTransitions = false }
}

// WithLogger routes solver progress (convergence, non-convergence) to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLinearSolver replaces the backend used for policy evaluation.
// Default: LUSolver.
func WithLinearSolver(s LinearSolver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *options) { o.solver = s }
}

// WithParallelism splits the per-state Bellman and greedy loops into at most
// workers contiguous chunks evaluated concurrently. Results are identical to
// the sequential loop. Panics if workers < 1.
func WithParallelism(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = workers }
}
