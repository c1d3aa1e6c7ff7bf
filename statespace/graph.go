package statespace

import (
	"fmt"
	"math"
)

// NewGraph returns an empty transition Graph.
// Complexity: O(1).
func NewGraph[S comparable]() *Graph[S] {
	return &Graph[S]{
		adjacency: make(map[S][]Transition[S]),
		seen:      make(map[S]map[Transition[S]]struct{}),
	}
}

// AddState registers s as a source state with no outgoing transitions if it
// is not known yet. It is a no-op for existing states.
// Complexity: O(1).
func (g *Graph[S]) AddState(s S) {
	if _, ok := g.adjacency[s]; ok {
		return
	}
	g.adjacency[s] = nil
	g.seen[s] = make(map[Transition[S]]struct{})
	g.order = append(g.order, s)
}

// AddTransition adds the edge from→to with the given cost.
// Adding an identical (to, cost) pair twice is a no-op; a different cost to
// the same target is kept as a parallel edge.
// Returns ErrBadCost for negative, NaN or infinite costs.
// Complexity: O(1) amortized.
func (g *Graph[S]) AddTransition(from, to S, cost float64) error {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %v→%v cost=%v", ErrBadCost, from, to, cost)
	}
	g.AddState(from)
	t := Transition[S]{To: to, Cost: cost}
	if _, dup := g.seen[from][t]; dup {
		return nil
	}
	g.seen[from][t] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], t)
	g.edges++

	return nil
}

// Successors returns the outgoing transitions of s in insertion order.
// A state that is not a key of the graph has no successors.
// The returned slice is owned by the graph and must not be modified.
// Complexity: O(1).
func (g *Graph[S]) Successors(s S) []Transition[S] {
	return g.adjacency[s]
}

// HasState reports whether s was registered as a source state.
func (g *Graph[S]) HasState(s S) bool {
	_, ok := g.adjacency[s]
	return ok
}

// States returns the source states (keys of the relation) in first-insertion order.
// Complexity: O(V) for the copy.
func (g *Graph[S]) States() []S {
	out := make([]S, len(g.order))
	copy(out, g.order)

	return out
}

// NumStates returns the number of source states.
func (g *Graph[S]) NumStates() int { return len(g.order) }

// NumTransitions returns the number of stored (deduplicated) transitions.
func (g *Graph[S]) NumTransitions() int { return g.edges }

// Edges returns every transition as (from, to, cost) in deterministic order:
// sources in insertion order, then each source's transitions in insertion order.
// Complexity: O(V + E).
func (g *Graph[S]) Edges() []Edge[S] {
	out := make([]Edge[S], 0, g.edges)
	for _, from := range g.order {
		for _, t := range g.adjacency[from] {
			out = append(out, Edge[S]{From: from, To: t.To, Cost: t.Cost})
		}
	}

	return out
}

// Reverse returns a new Graph in which every edge (a, b, c) becomes (b, a, c).
// Costs are kept unchanged. The receiver is not modified.
// Complexity: O(V + E).
func (g *Graph[S]) Reverse() *Graph[S] {
	r := NewGraph[S]()
	for _, from := range g.order {
		for _, t := range g.adjacency[from] {
			// costs were validated on insertion
			_ = r.AddTransition(t.To, from, t.Cost)
		}
	}

	return r
}
