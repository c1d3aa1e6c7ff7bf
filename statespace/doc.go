// Package statespace defines the data model shared by every search strategy
// and by the heuristic verifier: opaque states, costed transitions, the
// transition Graph and the Space (start state + transitions + goal set).
//
// Overview:
//
//   - A State is any comparable Go value; the package never interprets it.
//   - A Transition is a directed edge (to, cost) stored under its source state.
//   - A Graph keeps, per source state, an insertion-ordered set of (to, cost)
//     pairs. Identical pairs collapse; two edges to the same target with
//     different costs are both kept (parallel edges are distinct actions).
//   - A Space wraps a Graph with a start state and a goal set. The start state
//     may itself be a goal.
//
// Determinism:
//
//   - States() and Goals() return states in first-insertion order, and
//     Successors() returns transitions in insertion order, so every algorithm
//     built on top of this package is reproducible run to run.
//
// Generators:
//
//   - Chain, Grid, RandomDAG and Random build string-keyed spaces of a given
//     shape for tests and benchmarks. The random ones are reproducible for a
//     fixed *rand.Rand seed.
//
// Errors:
//
//   - ErrBadCost: transition cost is negative, NaN or infinite.
//   - ErrTooFewStates, ErrNeedRandSource: generator parameter errors.
//
// Thread safety:
//
//   - A Graph or Space is not safe for concurrent mutation. Once built it is
//     treated as read-only by every algorithm and may be shared by concurrent
//     read-only callers.
package statespace
