package ddp

import (
	"errors"
	"slices"
)

// Sentinel errors returned by the DiscreteDP engine.
var (
	// ErrInvalidParameter indicates invalid construction input (β outside
	// (0,1), mismatched R/Q shapes, non-stochastic Q, bad rewards) or an
	// argument of the wrong shape or range passed to an operation.
	ErrInvalidParameter = errors.New("ddp: invalid parameter")

	// ErrSingularSystem indicates that the policy-evaluation system
	// (I − β·Q_π)·V = R_π is singular or numerically unsolvable.
	ErrSingularSystem = errors.New("ddp: singular policy evaluation system")
)

// Defaults for the solvers and construction checks.
const (
	// DefaultTolerance is the sup-norm stopping threshold of SolveVFI.
	DefaultTolerance = 1e-7

	// DefaultVFIMaxIter bounds the number of Bellman applications in SolveVFI.
	DefaultVFIMaxIter = 2000

	// DefaultPFIMaxIter bounds the number of policy improvements in SolvePFI.
	DefaultPFIMaxIter = 500

	// DefaultTransitionEpsilon is the tolerance on |Σ_s' Q[s,a,s'] − 1|.
	DefaultTransitionEpsilon = 1e-8
)

// Policy assigns one action index to every state: Policy[s] = a.
type Policy []int

// Equal reports whether p and other choose the same action in every state.
func (p Policy) Equal(other Policy) bool {
	return slices.Equal(p, other)
}

// Clone returns an independent copy of p.
func (p Policy) Clone() Policy {
	return slices.Clone(p)
}

// VFIOptions configures SolveVFI.
//
// Tol          – sup-norm threshold; iteration stops once ‖V_{k+1} − V_k‖∞ < Tol. Must be > 0.
// MaxIter      – maximum number of Bellman applications. Must be ≥ 1.
// TrackHistory – if true, the result keeps every iterate V₀, V₁, …
type VFIOptions struct {
	Tol          float64
	MaxIter      int
	TrackHistory bool
}

// DefaultVFIOptions returns Tol=1e-7, MaxIter=2000, TrackHistory=false.
func DefaultVFIOptions() VFIOptions {
	return VFIOptions{
		Tol:          DefaultTolerance,
		MaxIter:      DefaultVFIMaxIter,
		TrackHistory: false,
	}
}

// PFIOptions configures SolvePFI.
//
// MaxIter – maximum number of evaluate/improve rounds. Must be ≥ 1.
type PFIOptions struct {
	MaxIter int
}

// DefaultPFIOptions returns MaxIter=500.
func DefaultPFIOptions() PFIOptions {
	return PFIOptions{MaxIter: DefaultPFIMaxIter}
}

// VFIResult is the outcome of SolveVFI.
type VFIResult struct {
	Values     []float64   // final value function (length n_states)
	Policy     Policy      // greedy policy with respect to Values
	Converged  bool        // true if the tolerance was met within MaxIter
	Iterations int         // number of Bellman applications performed
	Residual   float64     // sup-norm distance between the last two iterates
	History    [][]float64 // V₀, V₁, … when TrackHistory was set; nil otherwise
}

// PFIResult is the outcome of SolvePFI.
type PFIResult struct {
	Values     []float64 // exact value of Policy
	Policy     Policy    // last policy (optimal when Converged)
	Converged  bool      // true if the policy became stable within MaxIter
	Iterations int       // number of evaluate/improve rounds performed
}
