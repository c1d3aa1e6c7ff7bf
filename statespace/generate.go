package statespace

import (
	"errors"
	"fmt"
	"math/rand"
)

// Generator errors.
var (
	// ErrTooFewStates indicates a size parameter below the generator's minimum.
	ErrTooFewStates = errors.New("statespace: size parameter too small")

	// ErrNeedRandSource indicates a random generator called with a nil *rand.Rand.
	ErrNeedRandSource = errors.New("statespace: rng is required")
)

const (
	minChainStates = 2
	minGridDim     = 1
	gridIDFmt      = "%d,%d" // "r,c"
	indexIDFmt     = "v%d"
)

// IndexID is the state name the indexed generators use for index i.
func IndexID(i int) string { return fmt.Sprintf(indexIDFmt, i) }

// Chain builds v0 → v1 → … → v(n-1), every transition costing cost, with
// start v0 and goal v(n-1). n < 2 fails with ErrTooFewStates and an invalid
// cost with ErrBadCost.
func Chain(n int, cost float64) (*Space[string], error) {
	if n < minChainStates {
		return nil, fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainStates, ErrTooFewStates)
	}
	sp := New(IndexID(0), IndexID(n-1))
	for i := 1; i < n; i++ {
		if err := sp.AddTransition(IndexID(i-1), IndexID(i), cost); err != nil {
			return nil, fmt.Errorf("Chain: %w", err)
		}
	}

	return sp, nil
}

// Grid builds a rows×cols 4-connected unit-cost space. States are named
// "r,c"; every neighbour pair is linked both ways, right before bottom in
// row-major order. The start is "0,0" and the goal the opposite corner.
func Grid(rows, cols int) (*Space[string], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewStates)
	}
	id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
	sp := New(id(0, 0), id(rows-1, cols-1))
	sp.AddState(id(0, 0))
	link := func(a, b string) {
		// unit costs never fail validation
		_ = sp.AddTransition(a, b, 1)
		_ = sp.AddTransition(b, a, 1)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				link(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				link(id(r, c), id(r+1, c))
			}
		}
	}

	return sp, nil
}

// RandomDAG builds a unit-cost acyclic space over n indexed states. Each
// state but the last draws fanout successors among the next five indices,
// so every transition points forward. The start is v0 and the goal v(n-1).
// Identical rng seeds give identical spaces.
func RandomDAG(rng *rand.Rand, n, fanout int) (*Space[string], error) {
	if rng == nil {
		return nil, fmt.Errorf("RandomDAG: %w", ErrNeedRandSource)
	}
	if n < minChainStates || fanout < 1 {
		return nil, fmt.Errorf("RandomDAG: n=%d, fanout=%d: %w", n, fanout, ErrTooFewStates)
	}
	sp := New(IndexID(0), IndexID(n-1))
	for i := 0; i < n-1; i++ {
		for j := 0; j < fanout; j++ {
			to := i + 1 + rng.Intn(min(5, n-1-i))
			_ = sp.AddTransition(IndexID(i), IndexID(to), 1)
		}
	}

	return sp, nil
}

// Random builds a possibly cyclic space over n indexed states. Each state
// draws fanout transitions to uniform targets, self-loops included, with
// integer costs in [0, maxCost). The start is v0 and the goals are v(n-1)
// and v(n/2). Identical rng seeds give identical spaces.
func Random(rng *rand.Rand, n, fanout, maxCost int) (*Space[string], error) {
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}
	if n < minChainStates || fanout < 1 || maxCost < 1 {
		return nil, fmt.Errorf("Random: n=%d, fanout=%d, maxCost=%d: %w", n, fanout, maxCost, ErrTooFewStates)
	}
	sp := New(IndexID(0), IndexID(n-1), IndexID(n/2))
	for i := 0; i < n; i++ {
		for j := 0; j < fanout; j++ {
			_ = sp.AddTransition(IndexID(i), IndexID(rng.Intn(n)), float64(rng.Intn(maxCost)))
		}
	}

	return sp, nil
}
