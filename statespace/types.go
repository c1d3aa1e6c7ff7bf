package statespace

import (
	"errors"
)

// ErrBadCost indicates a transition cost that is negative, NaN or infinite.
var ErrBadCost = errors.New("statespace: transition cost must be finite and non-negative")

// Transition is a directed, costed edge to state To. The source state is
// implied by the Graph key it is stored under.
type Transition[S comparable] struct {
	// To is the destination state.
	To S

	// Cost is the finite, non-negative price of taking this transition.
	Cost float64
}

// Edge is a fully qualified transition (From, To, Cost), used when iterating
// the whole relation at once.
type Edge[S comparable] struct {
	From S
	To   S
	Cost float64
}

// Graph is a directed transition relation keyed per source state.
//
// adjacency[from] holds the outgoing transitions of from in insertion order;
// seen[from] mirrors it as a set so duplicate (to, cost) pairs are dropped in O(1).
// order records source states in the order they were first added.
type Graph[S comparable] struct {
	adjacency map[S][]Transition[S]
	seen      map[S]map[Transition[S]]struct{}
	order     []S
	edges     int
}

// Space is a state space: a start state, a transition Graph and a goal set.
type Space[S comparable] struct {
	*Graph[S]

	start     S
	goals     map[S]struct{}
	goalOrder []S
}
