package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// randomTerrain returns an n×n grid with values in [1,4] and ~15% walls.
func randomTerrain(n int) [][]int {
	r := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			if r.Intn(100) < 15 {
				continue // wall
			}
			row[x] = 1 + r.Intn(4)
		}
		grid[y] = row
	}
	grid[0][0], grid[n-1][n-1] = 1, 1
	return grid
}

// BenchmarkConnectedComponents measures region labelling on a 500×500 grid.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomTerrain(500), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkAStar_Octile measures A* corner to corner on a 200×200 Conn8 grid.
func BenchmarkAStar_Octile(b *testing.B) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(randomTerrain(200), opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	goal := gridgraph.Point{X: 199, Y: 199}
	sp, err := gg.ToSpace(gridgraph.Point{}, goal)
	if err != nil {
		b.Fatal(err)
	}
	h := gg.Octile(goal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(sp, h)
	}
}
