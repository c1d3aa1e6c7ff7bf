package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// Algorithm names a search strategy.
type Algorithm string

// Supported strategies.
const (
	AlgBFS   Algorithm = "bfs"
	AlgDFS   Algorithm = "dfs"
	AlgUCS   Algorithm = "ucs"
	AlgLDFS  Algorithm = "ldfs"
	AlgIDS   Algorithm = "ids"
	AlgGBFS  Algorithm = "gbfs"
	AlgHCS   Algorithm = "hcs"
	AlgAStar Algorithm = "astar"
)

var algorithms = []Algorithm{AlgBFS, AlgDFS, AlgUCS, AlgLDFS, AlgIDS, AlgGBFS, AlgHCS, AlgAStar}

var titles = map[Algorithm]string{
	AlgBFS:   "Breadth-First Search",
	AlgDFS:   "Depth-First Search",
	AlgUCS:   "Uniform-Cost Search",
	AlgLDFS:  "Depth-Limited Search",
	AlgIDS:   "Iterative Deepening Search",
	AlgGBFS:  "Greedy Best-First Search",
	AlgHCS:   "Hill-Climbing Search",
	AlgAStar: "A* Search",
}

// Algorithms returns every supported strategy in canonical order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// ParseAlgorithm resolves a case-insensitive name ("bfs", "astar", "a*", ...).
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" {
		return AlgAStar, nil
	}
	for _, a := range algorithms {
		if string(a) == n {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) String() string { return string(a) }

// Title returns a human-readable name.
func (a Algorithm) Title() string {
	if t, ok := titles[a]; ok {
		return t
	}

	return string(a)
}

// Informed reports whether the strategy needs a heuristic.
func (a Algorithm) Informed() bool {
	return a == AlgGBFS || a == AlgHCS || a == AlgAStar
}

// Bounded reports whether the strategy needs a depth bound.
func (a Algorithm) Bounded() bool { return a == AlgLDFS }

// CostTracked reports whether the strategy orders by path cost.
func (a Algorithm) CostTracked() bool { return a == AlgUCS || a == AlgAStar }

// Run dispatches to the strategy named by alg. h is ignored by uninformed
// strategies and depth by every strategy but AlgLDFS.
func Run[S comparable](alg Algorithm, sp *statespace.Space[S], h heuristic.Func[S], depth int, opts ...Option) (*Result[S], error) {
	switch alg {
	case AlgBFS:
		return BreadthFirst(sp, opts...)
	case AlgDFS:
		return DepthFirst(sp, opts...)
	case AlgUCS:
		return UniformCost(sp, opts...)
	case AlgLDFS:
		return DepthLimited(sp, depth, opts...)
	case AlgIDS:
		return IterativeDeepening(sp, opts...)
	case AlgGBFS:
		return GreedyBestFirst(sp, h, opts...)
	case AlgHCS:
		return HillClimbing(sp, h, opts...)
	case AlgAStar:
		return AStar(sp, h, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}
