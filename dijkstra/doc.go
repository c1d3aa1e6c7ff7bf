// Package dijkstra provides the shortest-path oracle: a multi-source Dijkstra
// over a transition graph with non-negative costs.
//
// Overview:
//
//   - Dijkstra computes, for every reachable state, the minimal cost from the
//     closest of a set of source states, in O((V + E) log V) time.
//   - It relies on frontier.Priority (a min-heap with insertion-order tie-break)
//     and lazy rejection of stale entries through a settled-state set.
//   - The same routine serves standalone callers and the heuristic verifier,
//     which runs it over the reversed transition graph rooted at the goal set
//     to obtain the true optimal cost-to-goal h*(s) of every state.
//
// When to use:
//
//   - Whenever you need exact true distances on a static graph with
//     non-negative costs, e.g. as ground truth for heuristic checks or to
//     validate UCS/A* results.
//
// Key features:
//
//   - Multi-source: every source starts at distance 0.
//   - ReturnPath: optional predecessor map.
//   - MaxDistance: abort exploration beyond a given distance.
//
// Error handling (sentinel errors):
//
//   - ErrNoSources:      no source state supplied.
//   - ErrNilGraph:       nil graph.
//   - ErrNegativeWeight: a negative cost was found by the O(E) pre-scan.
//     Negative costs are a precondition violation; the oracle does not try to recover.
//   - ErrBadMaxDistance: raised via panic by WithMaxDistance.
//
// API reference:
//
//	func Dijkstra[S comparable](g Graph[S], sources []S, opts ...Option) (Costs[S], map[S]S, error)
//	func ShortestCosts[S comparable](sources []S, g Graph[S]) (Costs[S], error)
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent calls over the same unchanging graph are safe.
package dijkstra
