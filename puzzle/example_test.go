package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleManhattan solves a scrambled board with A*.
func ExampleManhattan() {
	start := "123_4x6_758"
	sp, _ := puzzle.NewSpace(start, 6, puzzle.Solved)
	h, _ := puzzle.Manhattan(puzzle.Solved)

	res, _ := search.AStar(sp, h)
	for _, b := range res.Path {
		fmt.Println(puzzle.Format(b))
	}
	// Output:
	// 123_4x6_758
	// 123_456_7x8
	// 123_456_78x
}
