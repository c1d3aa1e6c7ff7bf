package search

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/statespace"
)

// DepthLimited runs depth-first search that never expands a node deeper
// than k. A state is re-opened when it is reached again at a strictly
// shallower depth, so every state within k transitions of the start is
// eventually expanded at its minimal depth. It is a partial search: a goal
// beyond the bound is reported as not found.
//
// Returns ErrBadDepthBound for k < 0; no default bound is substituted.
func DepthLimited[S comparable](sp *statespace.Space[S], k int, opts ...Option) (*Result[S], error) {
	return observe(AlgLDFS, sp, opts, func(o Options) (*Result[S], error) {
		if k < 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadDepthBound, k)
		}

		return depthLimited(sp, k, o.Logger), nil
	})
}

// IterativeDeepening runs DepthLimited with bounds 0, 1, ... up to
// Options.DeepeningCap-1 and stops at the first bound that reaches a goal.
// On finite acyclic unit-cost spaces its path is as short as BreadthFirst's.
// Visited accumulates across iterations. Exhausting the cap is reported as
// not found, never as an error.
func IterativeDeepening[S comparable](sp *statespace.Space[S], opts ...Option) (*Result[S], error) {
	return observe(AlgIDS, sp, opts, func(o Options) (*Result[S], error) {
		total := 0
		for k := 0; k < o.DeepeningCap; k++ {
			res := depthLimited(sp, k, o.Logger)
			total += res.Visited
			o.Logger.Debug("deepen", slog.Int("bound", k), slog.Int("visited", res.Visited), slog.Bool("found", res.Found))
			if res.Found {
				res.Algorithm = AlgIDS
				res.Visited = total

				return res, nil
			}
		}

		return notFound[S](AlgIDS, total), nil
	})
}

// depthLimited is the bounded loop shared by DepthLimited and IterativeDeepening.
// depth records the depth at which each state was last expanded.
func depthLimited[S comparable](sp *statespace.Space[S], k int, log *slog.Logger) *Result[S] {
	depth := make(map[S]int)
	stack := frontier.NewStack[*Node[S]]()
	stack.Push(Root(sp.Start()))
	visited := 0

	for !stack.Empty() {
		n := stack.Pop()
		if d, ok := depth[n.State]; ok && d <= n.Depth {
			continue // already expanded at least as shallow
		}
		if sp.IsGoal(n.State) {
			return found(AlgLDFS, n, visited)
		}
		depth[n.State] = n.Depth
		visited++
		log.Debug("expand", slog.Any("state", n.State), slog.Int("depth", n.Depth), slog.Int("bound", k))

		if n.Depth >= k {
			continue
		}
		for _, t := range sp.Successors(n.State) {
			if d, ok := depth[t.To]; ok && d <= n.Depth+1 {
				continue
			}
			stack.Push(n.Child(t.To, t.Cost))
		}
	}

	return notFound[S](AlgLDFS, visited)
}
