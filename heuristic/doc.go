// Package heuristic defines heuristic functions over search states and
// verifies two of their properties against a transition graph.
//
// Overview:
//
//   - Func[S] maps a state to a non-negative estimate of its remaining cost.
//     FromTable backs it with a precomputed map (e.g. loaded from a file);
//     Zero is the trivial estimate. Procedural providers live next to the
//     state types they understand (gridgraph, puzzle).
//   - CheckOptimism compares h against the true cost-to-goal h*, obtained by
//     running the dijkstra oracle from the goal set over the reversed graph.
//     A state is flagged iff h(s) > h*(s).
//   - CheckConsistency flags every transition (s1, s2, c) with h(s1) > h(s2) + c.
//
// Violations are data: both checks return them in their result and only
// fail on invalid input or when h itself fails (ErrMissingValue).
//
// Complexity:
//
//   - CheckOptimism: O((V + E) log V).
//   - CheckConsistency: O(V + E), h evaluated once per state.
package heuristic
