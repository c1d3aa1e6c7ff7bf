// Package gridgraph turns a 2D grid of integer cells into a search space.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value ≥ LandThreshold (and > 0) are passable; entering one
//     costs its value, times √2 for a diagonal move under Conn8.
//   - ToSpace yields a statespace.Space[Point] for the search package.
//   - Manhattan and Octile give distance heuristics scaled by the cheapest
//     passable cell, so both are optimistic and consistent for their
//     connectivity.
//   - ConnectedComponents groups passable cells into regions; points in
//     different regions cannot reach each other.
//
// Complexity:
//
//   - ToGraph / ToSpace:   O(W×H×d), Memory: O(W×H×d)   (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds, ErrImpassable: invalid start or goal for ToSpace.
package gridgraph
