package ddp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/discretedp/ddp"
	"github.com/katalvlaran/discretedp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepInputs(t *testing.T) (*matrix.Dense, *ddp.Transitions) {
	t.Helper()
	r, q := randomMDP(12, 3, 17)
	rm, err := matrix.NewDenseFromRows(r)
	require.NoError(t, err)
	qt, err := ddp.NewTransitionsFromSlices(q)
	require.NoError(t, err)

	return rm, qt
}

func TestSweep_ResultsFollowBetaOrder(t *testing.T) {
	r, q := sweepInputs(t)
	betas := []float64{0.95, 0.5, 0.8, 0.9, 0.6}

	for _, method := range []ddp.Method{ddp.MethodVFI, ddp.MethodPFI} {
		t.Run(method.String(), func(t *testing.T) {
			got, err := ddp.Sweep(context.Background(), r, q, betas, ddp.SweepOptions{Method: method, Workers: 2})
			require.NoError(t, err)
			require.Len(t, got, len(betas))

			for i, beta := range betas {
				assert.Equal(t, beta, got[i].Beta)
				assert.True(t, got[i].Converged)

				d, err := ddp.New(r, q, beta)
				require.NoError(t, err)
				want, err := d.SolvePFI(ddp.DefaultPFIOptions())
				require.NoError(t, err)
				assert.InDeltaSlice(t, want.Values, got[i].Values, 1e-5, "beta=%g", beta)
			}
		})
	}
}

func TestSweep_InvalidBeta(t *testing.T) {
	r, q := sweepInputs(t)
	_, err := ddp.Sweep(context.Background(), r, q, []float64{0.5, 1.2, 0.7}, ddp.SweepOptions{})
	assert.ErrorIs(t, err, ddp.ErrInvalidParameter)
}

func TestSweep_UnknownMethod(t *testing.T) {
	r, q := sweepInputs(t)
	_, err := ddp.Sweep(context.Background(), r, q, []float64{0.5}, ddp.SweepOptions{Method: ddp.Method(7)})
	assert.ErrorIs(t, err, ddp.ErrInvalidParameter)
	assert.Equal(t, "Method(7)", ddp.Method(7).String())
}

func TestSweep_CancelledContext(t *testing.T) {
	r, q := sweepInputs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ddp.Sweep(ctx, r, q, []float64{0.5, 0.9}, ddp.SweepOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep_Empty(t *testing.T) {
	r, q := sweepInputs(t)
	got, err := ddp.Sweep(context.Background(), r, q, nil, ddp.SweepOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
