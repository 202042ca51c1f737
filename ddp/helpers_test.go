// Package ddp_test contains unit tests for the DiscreteDP engine.
package ddp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/discretedp/ddp"
	"github.com/stretchr/testify/require"
)

// randomMDP returns rewards in [-1,1) and strictly positive, row-normalized
// transition probabilities for an n-state, m-action problem.
func randomMDP(n, m int, seed int64) ([][]float64, [][][]float64) {
	rng := rand.New(rand.NewSource(seed))
	r := make([][]float64, n)
	q := make([][][]float64, n)
	for s := 0; s < n; s++ {
		r[s] = make([]float64, m)
		q[s] = make([][]float64, m)
		for a := 0; a < m; a++ {
			r[s][a] = rng.Float64()*2 - 1
			row := make([]float64, n)
			var sum float64
			for next := range row {
				row[next] = rng.Float64() + 0.01
				sum += row[next]
			}
			for next := range row {
				row[next] /= sum
			}
			q[s][a] = row
		}
	}

	return r, q
}

// mustModel builds an engine from literals or fails the test.
func mustModel(t testing.TB, r [][]float64, q [][][]float64, beta float64, opts ...ddp.Option) *ddp.DiscreteDP {
	t.Helper()
	d, err := ddp.NewFromSlices(r, q, beta, opts...)
	require.NoError(t, err)

	return d
}

// randomModel is mustModel over randomMDP.
func randomModel(t testing.TB, n, m int, seed int64, beta float64, opts ...ddp.Option) *ddp.DiscreteDP {
	t.Helper()
	r, q := randomMDP(n, m, seed)

	return mustModel(t, r, q, beta, opts...)
}

// randomVector returns n values in [-scale, scale).
func randomVector(n int, scale float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = (rng.Float64()*2 - 1) * scale
	}

	return v
}

// selfLoops returns the n-state, m-action tensor in which every action keeps
// the current state.
func selfLoops(n, m int) [][][]float64 {
	q := make([][][]float64, n)
	for s := range q {
		q[s] = make([][]float64, m)
		for a := range q[s] {
			q[s][a] = make([]float64, n)
			q[s][a][s] = 1
		}
	}

	return q
}
