package statespace

// New creates a Space with the given start state, an empty transition graph
// and the given goal states.
func New[S comparable](start S, goals ...S) *Space[S] {
	sp := &Space[S]{
		Graph: NewGraph[S](),
		start: start,
		goals: make(map[S]struct{}, len(goals)),
	}
	for _, g := range goals {
		sp.AddGoal(g)
	}

	return sp
}

// FromGraph wraps an existing Graph into a Space. The graph is shared, not copied.
func FromGraph[S comparable](g *Graph[S], start S, goals ...S) *Space[S] {
	sp := New(start, goals...)
	sp.Graph = g

	return sp
}

// Start returns the start state.
func (sp *Space[S]) Start() S { return sp.start }

// AddGoal adds s to the goal set. Adding an existing goal is a no-op.
func (sp *Space[S]) AddGoal(s S) {
	if _, ok := sp.goals[s]; ok {
		return
	}
	sp.goals[s] = struct{}{}
	sp.goalOrder = append(sp.goalOrder, s)
}

// IsGoal reports whether s belongs to the goal set.
func (sp *Space[S]) IsGoal(s S) bool {
	_, ok := sp.goals[s]
	return ok
}

// Goals returns the goal states in insertion order.
func (sp *Space[S]) Goals() []S {
	out := make([]S, len(sp.goalOrder))
	copy(out, sp.goalOrder)

	return out
}
