package heuristic

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/statespace"
)

// CheckOptimism reports whether h never overestimates the true optimal
// cost-to-goal.
//
// Implementation:
//   - Stage 1: reverse g so every edge (a, b, c) becomes (b, a, c).
//   - Stage 2: run the Dijkstra oracle from the goal set on the reversed graph;
//     the resulting table is h*(s) for every state that can reach a goal.
//   - Stage 3: for every state with outgoing transitions, in g.States() order,
//     flag h(s) > h*(s). States with no route to a goal have h* = +Inf and
//     can never be flagged. Each violation carries a cheapest route to a goal
//     taken from the oracle's predecessor map.
//
// The oracle is capped at the largest estimate: beyond it h*(s) exceeds
// every h(s), so no further state can be flagged.
//
// Errors:
//   - ErrNilHeuristic, ErrNilGraph for invalid input.
//   - Any error returned by h (e.g. ErrMissingValue), wrapped with the state.
//
// Complexity: O((V + E) log V) for the oracle plus O(V) evaluations of h.
func CheckOptimism[S comparable](h Func[S], g *statespace.Graph[S], goals []S) (*OptimismResult[S], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	res := &OptimismResult[S]{Optimistic: true}
	if len(goals) == 0 {
		// no goal: every h* is +Inf
		res.Checked = g.NumStates()
		return res, nil
	}

	states := g.States()
	estimates := make([]float64, len(states))
	bound := 0.0
	for i, s := range states {
		est, err := h(s)
		if err != nil {
			return nil, fmt.Errorf("heuristic: h(%v): %w", s, err)
		}
		estimates[i] = est
		if est > bound {
			bound = est
		}
	}

	// a state with h*(s) > max h cannot be flagged, so the oracle stops there
	optimal, next, err := dijkstra.Dijkstra[S](g.Reverse(), goals,
		dijkstra.WithReturnPath(),
		dijkstra.WithMaxDistance(bound),
	)
	if err != nil {
		return nil, fmt.Errorf("heuristic: optimal costs: %w", err)
	}

	for i, s := range states {
		res.Checked++
		if hs := optimal.Of(s); estimates[i] > hs {
			res.Violations = append(res.Violations, OptimismViolation[S]{
				State:    s,
				Estimate: estimates[i],
				Optimal:  hs,
				Route:    route(s, next),
			})
		}
	}
	res.Optimistic = len(res.Violations) == 0

	return res, nil
}

// CheckConsistency reports whether h obeys h(s1) ≤ h(s2) + c for every
// transition (s1, s2, c) of g.
//
// Transitions are visited in g.Edges() order and h is evaluated once per state.
//
// Errors:
//   - ErrNilHeuristic, ErrNilGraph for invalid input.
//   - Any error returned by h, wrapped with the state.
//
// Complexity: O(V + E).
func CheckConsistency[S comparable](h Func[S], g *statespace.Graph[S]) (*ConsistencyResult[S], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	memo := make(map[S]float64)
	eval := func(s S) (float64, error) {
		if v, ok := memo[s]; ok {
			return v, nil
		}
		v, err := h(s)
		if err != nil {
			return 0, fmt.Errorf("heuristic: h(%v): %w", s, err)
		}
		memo[s] = v

		return v, nil
	}

	res := &ConsistencyResult[S]{Consistent: true}
	for _, e := range g.Edges() {
		h1, err := eval(e.From)
		if err != nil {
			return nil, err
		}
		h2, err := eval(e.To)
		if err != nil {
			return nil, err
		}
		res.Checked++
		if h1 > h2+e.Cost {
			res.Violations = append(res.Violations, ConsistencyViolation[S]{
				From:         e.From,
				To:           e.To,
				FromEstimate: h1,
				ToEstimate:   h2,
				Cost:         e.Cost,
			})
		}
	}
	res.Consistent = len(res.Violations) == 0

	return res, nil
}

// Check runs both CheckOptimism and CheckConsistency against sp.
func Check[S comparable](h Func[S], sp *statespace.Space[S]) (*Report[S], error) {
	if sp == nil {
		return nil, ErrNilGraph
	}
	opt, err := CheckOptimism(h, sp.Graph, sp.Goals())
	if err != nil {
		return nil, err
	}
	cons, err := CheckConsistency(h, sp.Graph)
	if err != nil {
		return nil, err
	}

	return &Report[S]{Optimism: opt, Consistency: cons}, nil
}

// route follows the reversed-graph predecessor map from s to a goal. In the
// reversed graph prev[v] == u means v→u in the original, one step closer.
func route[S comparable](s S, next map[S]S) []S {
	out := []S{s}
	for {
		n, ok := next[s]
		if !ok {
			return out
		}
		out = append(out, n)
		s = n
	}
}
