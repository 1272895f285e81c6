// Package graph provides the small, integer-labelled weighted graphs that back
// the Christofides pipeline: a simple Graph (one weight per ordered pair) and a
// MultiGraph (a list of parallel weights per ordered pair).
//
// What & Why
//
//   - Vertices are dense integers 0..n-1, fixed when the graph is created.
//     Point sets map onto them by index, so no string IDs or vertex objects are
//     needed.
//   - Graph stores adjacency as map[from]map[to]weight. Inserting an edge that
//     already exists keeps the LOWER weight, so repeated insertion never raises
//     a cost.
//   - MultiGraph stores map[from]map[to][]weight. It is the union of a spanning
//     tree and a matching, and it is the structure an Euler tour walks.
//
// Algorithms Provided
//
//   - (*Graph).PrimsMST(rng): Prim with a lazy-deletion min-heap of candidate
//     edges, grown from a random start vertex. O(E log E).
//   - (*Graph).MinCostPerfectMatching / MinCostPerfectMatchingOn: EXACT
//     minimum-cost perfect matching by recursive pairing enumeration with
//     pruning. (k-1)!! pairings for k vertices: usable only on small vertex
//     sets such as the odd-degree vertices of a spanning tree.
//   - (*MultiGraph).ReachableFromHere: breadth-first count with an explicit
//     queue. O(V + E).
//   - (*MultiGraph).IsBridge: remove one parallel edge, recount, restore.
//     O(V + E).
//   - (*MultiGraph).EulerTour: Fleury's algorithm, preferring non-bridges.
//     O(E · (V + E)).
//   - ShortcutEulerTour: first-visit vertex order of an Euler tour.
//
// Error Conditions
//
//   - ErrVertexOutOfRange, ErrSelfLoop, ErrBadWeight: malformed edge input.
//   - ErrDisconnected: PrimsMST could not reach every vertex.
//   - ErrOddVertexCount, ErrDuplicateVertex, ErrNoPerfectMatching: matching
//     input cannot be paired.
//   - ErrEdgeNotFound, ErrAsymmetricEdge: RemoveAnEdge on a missing or
//     corrupted edge.
//   - ErrNotEulerian: EulerTour on a multigraph with an odd-vertex count other
//     than 0 or 2, or whose edges do not form one component.
//
// Graphs are not safe for concurrent mutation; each solver call builds its
// own.
package graph
