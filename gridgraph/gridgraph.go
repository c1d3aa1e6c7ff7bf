package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/statespace"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied; later changes to values do not affect gg.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// deep copy
	cells := make([][]int, h)
	minCost := 0
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.LandThreshold && v > 0 && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}
	// clockwise from north
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
		minCost:         minCost,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
// Zero-valued cells are always walls so that no move is free.
func (gg *GridGraph) Passable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	v := gg.CellValues[y][x]

	return v >= gg.LandThreshold && v > 0
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// ToGraph and ConnectedComponents walk cells through these offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// MinCost returns the smallest value of a passable cell, or 0 when every cell is a wall.
func (gg *GridGraph) MinCost() int { return gg.minCost }

// stepCost returns the cost of moving by offset d into a cell of value v.
func stepCost(d [2]int, v int) float64 {
	if d[0] != 0 && d[1] != 0 {
		return float64(v) * math.Sqrt2
	}

	return float64(v)
}

// ToGraph converts the GridGraph into a directed transition graph over Points.
// Every passable cell becomes a state; a move to a passable neighbor costs the
// neighbor's value, times √2 for diagonal moves under Conn8.
// Complexity: O(W×H×d) time, Memory: O(W×H×d).
func (gg *GridGraph) ToGraph() *statespace.Graph[Point] {
	g := statespace.NewGraph[Point]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := Point{X: x, Y: y}
			g.AddState(u)
			for _, d := range gg.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				// finite and positive: the error path is unreachable
				_ = g.AddTransition(u, Point{X: nx, Y: ny}, stepCost(d, gg.CellValues[ny][nx]))
			}
		}
	}

	return g
}

// ToSpace builds a search space from start to goal over ToGraph.
// Returns ErrOutOfBounds or ErrImpassable for an invalid endpoint.
func (gg *GridGraph) ToSpace(start, goal Point) (*statespace.Space[Point], error) {
	for _, p := range []Point{start, goal} {
		if !gg.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, gg.Width, gg.Height)
		}
		if !gg.Passable(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %s has value %d", ErrImpassable, p, gg.CellValues[p.Y][p.X])
		}
	}

	return statespace.FromGraph(gg.ToGraph(), start, goal), nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
