package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvsearch/heuristic"
)

// Manhattan returns the L1 distance to goal scaled by the cheapest passable
// cell. No Conn4 move is cheaper than MinCost, so the estimate never exceeds
// the true cost under Conn4. Under Conn8 it may overestimate; use Octile.
func (gg *GridGraph) Manhattan(goal Point) heuristic.Func[Point] {
	c := float64(gg.minCost)
	return func(p Point) (float64, error) {
		dx, dy := abs(p.X-goal.X), abs(p.Y-goal.Y)
		return c * float64(dx+dy), nil
	}
}

// Octile returns the 8-connected grid distance to goal (straight moves cost 1,
// diagonal moves √2) scaled by the cheapest passable cell.
func (gg *GridGraph) Octile(goal Point) heuristic.Func[Point] {
	c := float64(gg.minCost)
	return func(p Point) (float64, error) {
		dx, dy := abs(p.X-goal.X), abs(p.Y-goal.Y)
		lo, hi := min(dx, dy), max(dx, dy)
		return c * (float64(hi-lo) + math.Sqrt2*float64(lo)), nil
	}
}

// Heuristic returns the admissible distance heuristic matching gg.Conn.
func (gg *GridGraph) Heuristic(goal Point) heuristic.Func[Point] {
	if gg.Conn == Conn8 {
		return gg.Octile(goal)
	}

	return gg.Manhattan(goal)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
