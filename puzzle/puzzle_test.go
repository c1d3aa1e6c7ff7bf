package puzzle_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// twoAway is two slides from puzzle.Solved: blank down, then right.
const twoAway = "1234x6758"

func TestNormalize(t *testing.T) {
	n, err := puzzle.Normalize(" 123_4x6_758 ")
	require.NoError(t, err)
	assert.Equal(t, twoAway, n)
	assert.Equal(t, "123_4x6_758", puzzle.Format(n))

	for _, bad := range []string{"", "12345678", "123456789", "1234567xx", "12345678x0"} {
		_, err := puzzle.Normalize(bad)
		assert.ErrorIs(t, err, puzzle.ErrBadBoard, bad)
	}
}

func TestMoves(t *testing.T) {
	cases := map[string][]string{
		puzzle.Solved: {"12345x786", "1234567x8"},
		"1234x5678":   {"1x3425678", "1234756x8", "123x45678", "12345x678"},
		"x12345678":   {"312x45678", "1x2345678"},
	}
	for board, want := range cases {
		if diff := cmp.Diff(want, puzzle.Moves(board)); diff != "" {
			t.Errorf("Moves(%s) mismatch (-want +got):\n%s", board, diff)
		}
	}
}

func TestSolvable(t *testing.T) {
	assert.True(t, puzzle.Solvable(puzzle.Solved, twoAway))
	assert.False(t, puzzle.Solvable(puzzle.Solved, "12345687x"))
}

func TestNewSpace_Radius(t *testing.T) {
	sp, err := puzzle.NewSpace(puzzle.Solved, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, sp.NumStates())
	assert.Equal(t, 2, sp.NumTransitions())

	_, err = puzzle.NewSpace("bogus", 1)
	assert.ErrorIs(t, err, puzzle.ErrBadBoard)
	_, err = puzzle.NewSpace(puzzle.Solved, 1, "bogus")
	assert.ErrorIs(t, err, puzzle.ErrBadBoard)
}

func TestManhattan(t *testing.T) {
	h, err := puzzle.Manhattan(puzzle.Format(puzzle.Solved))
	require.NoError(t, err)

	for board, want := range map[string]float64{
		puzzle.Solved: 0,
		"1234567x8":   1, // one move from solved, blank not counted
		twoAway:       2,
		"123_4x6_758": 2,
		"x12345678":   12, // tiles 3 and 6 wrap to the next row, blank excluded
	} {
		v, err := h(board)
		require.NoError(t, err, board)
		assert.Equal(t, want, v, board)
	}

	_, err = h("123")
	assert.ErrorIs(t, err, puzzle.ErrBadBoard)

	multi, err := puzzle.Manhattan(puzzle.Solved, twoAway)
	require.NoError(t, err)
	v, err := multi(twoAway)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = puzzle.Manhattan()
	assert.ErrorIs(t, err, puzzle.ErrBadBoard)
}

func TestManhattan_SolvesOptimally(t *testing.T) {
	sp, err := puzzle.NewSpace(twoAway, 4, puzzle.Solved)
	require.NoError(t, err)
	h, err := puzzle.Manhattan(puzzle.Solved)
	require.NoError(t, err)

	rep, err := heuristic.Check(h, sp)
	require.NoError(t, err)
	assert.True(t, rep.Optimism.Optimistic)
	assert.True(t, rep.Consistency.Consistent)

	bfs, err := search.BreadthFirst(sp)
	require.NoError(t, err)
	astar, err := search.AStar(sp, h)
	require.NoError(t, err)

	want := []string{twoAway, "1234567x8", puzzle.Solved}
	assert.Equal(t, want, bfs.Path)
	assert.Equal(t, want, astar.Path)
	assert.Equal(t, 2.0, astar.Cost)
	assert.LessOrEqual(t, astar.Visited, bfs.Visited)
}
