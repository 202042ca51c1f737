package ddp

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/discretedp/matrix"
	"golang.org/x/sync/errgroup"
)

// Method selects the solution algorithm used by Sweep.
type Method int

const (
	// MethodVFI solves each model with SolveVFI.
	MethodVFI Method = iota

	// MethodPFI solves each model with SolvePFI.
	MethodPFI
)

// String returns "vfi" or "pfi".
func (m Method) String() string {
	switch m {
	case MethodVFI:
		return "vfi"
	case MethodPFI:
		return "pfi"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// SweepOptions configures Sweep.
//
// Method  – algorithm applied to every β (default MethodVFI).
// VFI/PFI – solver settings; zero values are replaced by the defaults.
// Workers – maximum number of models solved at once (≤0: GOMAXPROCS).
// Options – construction options forwarded to New for every β.
type SweepOptions struct {
	Method  Method
	VFI     VFIOptions
	PFI     PFIOptions
	Workers int
	Options []Option
}

// SweepResult is the solution of the model for one discount factor.
type SweepResult struct {
	Beta       float64
	Values     []float64
	Policy     Policy
	Converged  bool
	Iterations int
}

// Sweep solves the model (r, q) once per discount factor in betas,
// concurrently, and returns the results in the order of betas.
// The first construction or solve error cancels the remaining work and is
// returned; so is ctx's error if it is cancelled first.
func Sweep(ctx context.Context, r matrix.Matrix, q *Transitions, betas []float64, o SweepOptions) ([]SweepResult, error) {
	if o.Method != MethodVFI && o.Method != MethodPFI {
		return nil, fmt.Errorf("Sweep: %w: unknown method %v", ErrInvalidParameter, o.Method)
	}
	if o.VFI == (VFIOptions{}) {
		o.VFI = DefaultVFIOptions()
	}
	if o.PFI == (PFIOptions{}) {
		o.PFI = DefaultPFIOptions()
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]SweepResult, len(betas))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, beta := range betas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := New(r, q, beta, o.Options...)
			if err != nil {
				return fmt.Errorf("Sweep: beta[%d]: %w", i, err)
			}
			out, err := solveWith(d, o)
			if err != nil {
				return fmt.Errorf("Sweep: beta[%d]=%g: %w", i, beta, err)
			}
			results[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func solveWith(d *DiscreteDP, o SweepOptions) (SweepResult, error) {
	out := SweepResult{Beta: d.beta}
	switch o.Method {
	case MethodPFI:
		res, err := d.SolvePFI(o.PFI)
		if err != nil {
			return out, err
		}
		out.Values, out.Policy, out.Converged, out.Iterations = res.Values, res.Policy, res.Converged, res.Iterations
	default:
		res, err := d.SolveVFI(o.VFI)
		if err != nil {
			return out, err
		}
		out.Values, out.Policy, out.Converged, out.Iterations = res.Values, res.Policy, res.Converged, res.Iterations
	}

	return out, nil
}
