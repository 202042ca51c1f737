package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/discretedp/ddp"
	"github.com/katalvlaran/discretedp/matrix"
)

// ErrBadGrid is returned when a grid size or bound cannot describe a grid.
var ErrBadGrid = errors.New("models: invalid grid")

// MinGridSize is the smallest accepted number of grid points.
const MinGridSize = 2

// Model is a DiscreteDP model together with the grid its indices refer to.
type Model struct {
	Grid        []float64        // state/action values, increasing, Grid[0] = 0
	Rewards     *matrix.Dense    // n×n, −Inf where infeasible
	Transitions *ddp.Transitions // deterministic, Q[s,a,a] = 1
}

// CakeEating returns the cake-eating model on gridSize evenly spaced points
// in [0, xMax].
//
// Errors: ErrBadGrid if gridSize < MinGridSize or xMax is not positive and
// finite.
func CakeEating(gridSize int, xMax float64) (*Model, error) {
	if gridSize < MinGridSize {
		return nil, fmt.Errorf("CakeEating: %w: grid size %d < %d", ErrBadGrid, gridSize, MinGridSize)
	}
	if math.IsNaN(xMax) || math.IsInf(xMax, 0) || xMax <= 0 {
		return nil, fmt.Errorf("CakeEating: %w: xMax=%g must be positive and finite", ErrBadGrid, xMax)
	}

	grid := make([]float64, gridSize)
	step := xMax / float64(gridSize-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	grid[gridSize-1] = xMax

	r, err := matrix.NewDense(gridSize, gridSize, matrix.WithAllowNegInf())
	if err != nil {
		return nil, fmt.Errorf("CakeEating: %w", err)
	}
	q, err := ddp.NewTransitions(gridSize, gridSize, gridSize)
	if err != nil {
		return nil, fmt.Errorf("CakeEating: %w", err)
	}
	for s, x := range grid {
		for a, keep := range grid {
			reward := math.Inf(-1)
			if a <= s {
				reward = math.Sqrt(x - keep)
			}
			if err = r.Set(s, a, reward); err != nil {
				return nil, fmt.Errorf("CakeEating: %w", err)
			}
			if err = q.Set(s, a, a, 1); err != nil {
				return nil, fmt.Errorf("CakeEating: %w", err)
			}
		}
	}

	return &Model{Grid: grid, Rewards: r, Transitions: q}, nil
}
