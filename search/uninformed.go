package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/statespace"
)

// BreadthFirst explores sp level by level with a FIFO frontier.
// A state is admitted the first time it is generated, so each state is
// expanded at most once and the returned path has the fewest transitions.
// The goal test happens when a node is popped.
//
// Returns ErrNilSpace or ErrOptionViolation for invalid input.
// Complexity: O(V + E).
func BreadthFirst[S comparable](sp *statespace.Space[S], opts ...Option) (*Result[S], error) {
	return observe(AlgBFS, sp, opts, func(o Options) (*Result[S], error) {
		w := newWalker(sp, AlgBFS, frontier.NewQueue[*Node[S]](), nil, o.Logger)
		w.admitOnPush = true

		return w.run()
	})
}

// DepthFirst explores sp with a LIFO frontier. Successors are pushed in
// transition order, so the last one is explored first. A popped state that
// was already expanded is skipped.
//
// Returns ErrNilSpace or ErrOptionViolation for invalid input.
// Complexity: O(V + E) expansions; the frontier may hold O(E) nodes.
func DepthFirst[S comparable](sp *statespace.Space[S], opts ...Option) (*Result[S], error) {
	return observe(AlgDFS, sp, opts, func(o Options) (*Result[S], error) {
		return newWalker(sp, AlgDFS, frontier.NewStack[*Node[S]](), nil, o.Logger).run()
	})
}

// UniformCost expands nodes in order of cumulative cost g, ties broken by
// generation order. With non-negative costs the first goal popped is reached
// by a cheapest path, and Result.Cost is that optimum.
//
// Returns ErrNilSpace or ErrOptionViolation for invalid input.
// Complexity: O((V + E) log E).
func UniformCost[S comparable](sp *statespace.Space[S], opts ...Option) (*Result[S], error) {
	return observe(AlgUCS, sp, opts, func(o Options) (*Result[S], error) {
		pq := frontier.NewPriority(func(n *Node[S]) float64 { return n.Cost })

		return newWalker(sp, AlgUCS, pq, nil, o.Logger).run()
	})
}
