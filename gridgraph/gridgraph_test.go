package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

func mustGrid(t *testing.T, grid [][]int, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	return gg
}

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBoundsAndPassable checks bounds and walls on a 3×2 grid.
func TestInBoundsAndPassable(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg := mustGrid(t, grid, gridgraph.Conn4)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if gg.Passable(0, 0) || !gg.Passable(1, 0) || gg.Passable(5, 5) {
		t.Error("Passable disagrees with grid values")
	}

	// input is deep-copied
	grid[0][1] = 0
	if !gg.Passable(1, 0) {
		t.Error("GridGraph must not alias its input")
	}
}

//----------------------------------------------------------------------------//
// ToGraph / ToSpace Tests
//----------------------------------------------------------------------------//

// TestToGraph_Conn4 verifies that walls are skipped and moves are orthogonal.
func TestToGraph_Conn4(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 0}, {1, 1}}, gridgraph.Conn4)
	g := gg.ToGraph()

	if g.NumStates() != 3 {
		t.Errorf("NumStates = %d; want 3", g.NumStates())
	}
	if g.NumTransitions() != 4 {
		t.Errorf("NumTransitions = %d; want 4", g.NumTransitions())
	}
	for _, tr := range g.Successors(gridgraph.Point{X: 0, Y: 0}) {
		if tr.To == (gridgraph.Point{X: 1, Y: 1}) {
			t.Error("unexpected diagonal move under Conn4")
		}
	}
}

// TestToGraph_Conn8Costs verifies diagonal costs are scaled by √2.
func TestToGraph_Conn8Costs(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 0}, {0, 3}}, gridgraph.Conn8)
	succ := gg.ToGraph().Successors(gridgraph.Point{X: 0, Y: 0})

	if len(succ) != 1 {
		t.Fatalf("successors = %v; want one diagonal move", succ)
	}
	if want := 3 * math.Sqrt2; math.Abs(succ[0].Cost-want) > 1e-12 {
		t.Errorf("diagonal cost = %v; want %v", succ[0].Cost, want)
	}
}

// TestToSpace_Errors verifies endpoint validation.
func TestToSpace_Errors(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 0}, {1, 1}}, gridgraph.Conn4)

	if _, err := gg.ToSpace(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("out of bounds: got %v", err)
	}
	if _, err := gg.ToSpace(gridgraph.Point{X: 1, Y: 0}, gridgraph.Point{X: 1, Y: 1}); !errors.Is(err, gridgraph.ErrImpassable) {
		t.Errorf("wall start: got %v", err)
	}
}

// TestToSpace_SearchAroundExpensiveCells checks that UCS and A* avoid a
// costly column and that Manhattan passes both checks.
func TestToSpace_SearchAroundExpensiveCells(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0}
	sp, err := gg.ToSpace(start, goal)
	if err != nil {
		t.Fatal(err)
	}

	ucs, err := search.UniformCost(sp)
	if err != nil {
		t.Fatal(err)
	}
	astar, err := search.AStar(sp, gg.Manhattan(goal))
	if err != nil {
		t.Fatal(err)
	}
	for _, res := range []*search.Result[gridgraph.Point]{ucs, astar} {
		if !res.Found || res.Cost != 6 || res.Len() != 6 {
			t.Errorf("%s: found=%v cost=%v len=%d; want true 6 6", res.Algorithm, res.Found, res.Cost, res.Len())
		}
	}

	rep, err := heuristic.Check(gg.Manhattan(goal), sp)
	if err != nil {
		t.Fatal(err)
	}
	if !rep.Optimism.Optimistic || !rep.Consistency.Consistent {
		t.Errorf("Manhattan should be optimistic and consistent: %+v %+v", rep.Optimism, rep.Consistency)
	}
}

//----------------------------------------------------------------------------//
// Heuristics and components
//----------------------------------------------------------------------------//

// TestHeuristics checks scaling by the cheapest cell.
func TestHeuristics(t *testing.T) {
	gg := mustGrid(t, [][]int{{2, 3}, {4, 5}}, gridgraph.Conn4)
	if gg.MinCost() != 2 {
		t.Fatalf("MinCost = %d; want 2", gg.MinCost())
	}
	v, _ := gg.Manhattan(gridgraph.Point{X: 1, Y: 1})(gridgraph.Point{X: 0, Y: 0})
	if v != 4 {
		t.Errorf("Manhattan = %v; want 4", v)
	}

	g8 := mustGrid(t, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, gridgraph.Conn8)
	h := g8.Heuristic(gridgraph.Point{X: 2, Y: 2})
	if v, _ := h(gridgraph.Point{X: 0, Y: 0}); math.Abs(v-2*math.Sqrt2) > 1e-12 {
		t.Errorf("Octile(0,0) = %v; want 2√2", v)
	}
	if v, _ := h(gridgraph.Point{X: 0, Y: 2}); v != 2 {
		t.Errorf("Octile(0,2) = %v; want 2", v)
	}
}

// TestConnectedComponents splits a grid along a wall column.
func TestConnectedComponents(t *testing.T) {
	gg := mustGrid(t, [][]int{{1, 0, 1}, {1, 0, 1}}, gridgraph.Conn4)
	comps := gg.ConnectedComponents()

	if len(comps) != 2 {
		t.Fatalf("components = %v; want 2", comps)
	}
	want := []gridgraph.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}
	if len(comps[0]) != 2 || comps[0][0] != want[0] || comps[0][1] != want[1] {
		t.Errorf("component 0 = %v; want %v", comps[0], want)
	}
	if !gg.Connected(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 0, Y: 1}) {
		t.Error("(0,0) and (0,1) should be connected")
	}
	if gg.Connected(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0}) {
		t.Error("(0,0) and (2,0) are separated by a wall")
	}
}
