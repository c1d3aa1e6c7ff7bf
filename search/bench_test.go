package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/statespace"
)

// BenchmarkSearch_Grid runs each frontier strategy on a 60×60 grid.
func BenchmarkSearch_Grid(b *testing.B) {
	const n = 60
	sp, err := statespace.Grid(n, n)
	if err != nil {
		b.Fatal(err)
	}
	h := heuristic.Zero[string]()

	for _, alg := range []search.Algorithm{search.AlgBFS, search.AlgDFS, search.AlgUCS, search.AlgAStar} {
		b.Run(alg.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = search.Run(alg, sp, h, 0)
			}
		})
	}
}
