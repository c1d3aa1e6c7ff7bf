// Package puzzle generates 8-puzzle state spaces and the Manhattan-distance
// heuristic over them.
//
// A board is a string of the nine symbols "12345678x" in row-major order,
// with 'x' as the blank. The row-separated form "123_456_78x" is accepted
// everywhere and reduced by Normalize.
//
// Manhattan leaves the blank out of its sum. A board one move from solved
// scores 1, not the 2 a count including the blank would give, so optimism
// and consistency verdicts for it differ from those of that variant.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

const (
	// Blank marks the empty square.
	Blank = 'x'
	// Side is the board width and height.
	Side = 3
	// Solved is the conventional goal board.
	Solved = "12345678x"

	symbols = "12345678x"
)

// ErrBadBoard is returned for a string that is not a permutation of "12345678x".
var ErrBadBoard = errors.New("puzzle: invalid board")

// Normalize strips row separators ('_') and validates b.
func Normalize(b string) (string, error) {
	n := strings.ReplaceAll(strings.TrimSpace(b), "_", "")
	if len(n) != Side*Side {
		return "", fmt.Errorf("%w: %q has %d squares", ErrBadBoard, b, len(n))
	}
	var seen [256]bool
	for i := 0; i < len(n); i++ {
		c := n[i]
		if !strings.ContainsRune(symbols, rune(c)) || seen[c] {
			return "", fmt.Errorf("%w: %q", ErrBadBoard, b)
		}
		seen[c] = true
	}

	return n, nil
}

// Format renders a normalized board with row separators, e.g. "123_456_78x".
func Format(b string) string {
	var sb strings.Builder
	for r := 0; r < Side; r++ {
		if r > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(b[r*Side : (r+1)*Side])
	}

	return sb.String()
}

// Moves returns the boards reachable from normalized board b by sliding one
// tile into the blank, in the order up, down, left, right (blank direction).
func Moves(b string) []string {
	i := strings.IndexByte(b, Blank)
	r, c := i/Side, i%Side
	out := make([]string, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= Side || nc < 0 || nc >= Side {
			continue
		}
		buf := []byte(b)
		j := nr*Side + nc
		buf[i], buf[j] = buf[j], buf[i]
		out = append(out, string(buf))
	}

	return out
}

// Solvable reports whether a can be transformed into b. Two boards are in
// the same component iff their tile permutations have equal inversion parity.
func Solvable(a, b string) bool {
	return inversions(a)%2 == inversions(b)%2
}

func inversions(b string) int {
	n := 0
	for i := 0; i < len(b); i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] != Blank && b[j] < b[i] {
				n++
			}
		}
	}

	return n
}

// NewSpace builds the unit-cost space of boards reachable from start within
// radius moves (radius ≤ 0: the whole reachable component, 181440 boards).
// Boards are stored in normalized form.
func NewSpace(start string, radius int, goals ...string) (*statespace.Space[string], error) {
	s, err := Normalize(start)
	if err != nil {
		return nil, err
	}
	gs := make([]string, 0, len(goals))
	for _, g := range goals {
		n, err := Normalize(g)
		if err != nil {
			return nil, err
		}
		gs = append(gs, n)
	}

	sp := statespace.New(s, gs...)
	depth := map[string]int{s: 0}
	queue := frontier.NewQueue[string]()
	queue.Push(s)
	for !queue.Empty() {
		b := queue.Pop()
		if radius > 0 && depth[b] >= radius {
			sp.AddState(b)
			continue
		}
		for _, m := range Moves(b) {
			_ = sp.AddTransition(b, m, 1)
			if _, ok := depth[m]; !ok {
				depth[m] = depth[b] + 1
				queue.Push(m)
			}
		}
	}

	return sp, nil
}

// Manhattan returns the sum over tiles of their row and column distance to
// the tile's place in the nearest goal. The blank is not counted, which keeps
// the estimate optimistic and consistent. Boards are normalized first, so
// "123_456_78x" and "12345678x" evaluate alike; an invalid board fails with
// ErrBadBoard.
func Manhattan(goals ...string) (heuristic.Func[string], error) {
	targets := make([][Side * Side]int, 0, len(goals))
	for _, g := range goals {
		n, err := Normalize(g)
		if err != nil {
			return nil, err
		}
		var pos [Side * Side]int
		for i := 0; i < len(n); i++ {
			pos[strings.IndexByte(symbols, n[i])] = i
		}
		targets = append(targets, pos)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no goal board", ErrBadBoard)
	}

	return func(b string) (float64, error) {
		n, err := Normalize(b)
		if err != nil {
			return 0, err
		}
		best := -1
		for _, pos := range targets {
			d := 0
			for i := 0; i < len(n); i++ {
				if n[i] == Blank {
					continue
				}
				j := pos[strings.IndexByte(symbols, n[i])]
				d += abs(i/Side-j/Side) + abs(i%Side-j%Side)
			}
			if best < 0 || d < best {
				best = d
			}
		}

		return float64(best), nil
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
