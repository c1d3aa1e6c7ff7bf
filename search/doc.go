// Package search implements uninformed and informed strategies over a
// statespace.Space.
//
// Overview:
//
//   - Uninformed: BreadthFirst (FIFO), DepthFirst (LIFO), UniformCost
//     (min by g), DepthLimited (LIFO within a depth bound) and
//     IterativeDeepening (DepthLimited with growing bounds).
//   - Informed: GreedyBestFirst (min by h), HillClimbing (single current
//     state, strictly improving moves) and AStar (min by g + h).
//   - Every frontier strategy tests for a goal when a node is popped and
//     reports "not found" as data (Result.Found == false), never as an error.
//   - Priority ties are broken by generation order (frontier.Priority), so
//     runs are reproducible.
//
// Costs must be non-negative (statespace rejects others). AStar returns a
// cheapest path only when its heuristic is optimistic; the heuristic package
// verifies that separately.
//
// Options:
//
//   - WithLogger: debug-level narration of each expansion (discarded by default).
//   - WithContext: parent context for the OpenTelemetry span of the run.
//   - WithDeepeningCap: number of bounds tried by IterativeDeepening (default 100).
//
// Error handling (sentinel errors):
//
//   - ErrNilSpace, ErrNilHeuristic: missing input.
//   - ErrBadDepthBound: DepthLimited with k < 0.
//   - ErrOptionViolation: invalid option value.
//   - ErrUnknownAlgorithm: ParseAlgorithm / Run with an unknown name.
//   - Errors of the heuristic (e.g. heuristic.ErrMissingValue) are wrapped with
//     the offending state and returned unchanged otherwise.
//
// Thread safety:
//
//   - A run only reads its space and heuristic; concurrent runs over the same
//     unchanging space are safe. A single run is sequential.
package search
