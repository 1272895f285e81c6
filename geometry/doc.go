// Package geometry provides the planar primitives shared by every TSP solver:
// points, open visitation paths, Euclidean distances and dense distance
// matrices.
//
// What & Why
//
//   - Point is an (X, Y) pair of real coordinates. It is a value type and is
//     never mutated once placed in a Path.
//   - Path is an ordered sequence of points. It is OPEN: TotalDistance sums the
//     legs between consecutive points and never adds a return leg. Callers that
//     want the length of a closed tour use Closed(p) first.
//   - DistanceMatrix precomputes all pairwise distances into a gonum
//     *mat.SymDense. Solvers that look distances up repeatedly (nearest
//     neighbour, branch and bound, Held–Karp, Christofides) read from it.
//
// Complexity
//
//   - Distance: O(1).
//   - TotalDistance, Reversed, Clone, Closed: O(n).
//   - IsPermutation: O(n log n).
//   - DistanceMatrix: O(n²) time, O(n²/2) memory.
//
// Example
//
//	square := geometry.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
//	geometry.TotalDistance(square)                  // 3
//	geometry.TotalDistance(geometry.Closed(square)) // 4
package geometry
