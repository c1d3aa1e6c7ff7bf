// Package frontier provides the three open-list containers used by the search
// strategies: a last-in-first-out Stack, a first-in-first-out Queue and a
// min-priority Priority queue.
//
// All three satisfy Frontier[T]:
//
//	Push(item T)   // O(1) amortized; O(log n) for Priority
//	Pop() T        // O(1) amortized; O(log n) for Priority
//	Empty() bool
//	Len() int
//
// Popping from an empty container is a precondition violation and panics with
// ErrEmpty; callers check Empty first or rely on a loop invariant.
//
// Tie-breaking:
//
//   - Priority orders items by the float64 key returned by its key function.
//     Items with equal keys pop in the order they were pushed (every push is
//     stamped with a monotonically increasing sequence number), which makes
//     UCS, greedy best-first, A* and Dijkstra reproducible.
package frontier
