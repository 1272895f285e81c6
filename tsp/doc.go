// Package tsp provides interchangeable path solvers for the planar
// Travelling Salesman Problem over a fixed point set.
//
// Every solver implements Solver: it is built from the bounding box
// (width, height), the points and Options, and ComputePath returns a fresh
// ordering of the points. Paths are open: no return edge to the start is
// implied. The caller's slice is never reordered.
//
// Solvers:
//
//   - HorizontalSort, VerticalSort, OriginSort: order by x, by y, or by
//     squared distance from the origin. O(n log n).
//   - RandomSampler: reshuffle Options.Samples times, keep the shortest.
//     O(samples·n).
//   - BruteForce: every permutation. Exact, O(n!·n).
//   - BranchAndBound: depth-first search from every start vertex, pruning a
//     branch once its partial length reaches the best complete path. Exact,
//     O(n!) worst case.
//   - NearestNeighbor: greedy walk from every start vertex over presorted
//     candidate rows with a seeded tiebreaker. O(n³).
//   - NearestNeighborParallel: the same walks fanned out to Options.Workers
//     goroutines. Output is identical to NearestNeighbor.
//   - Christofides: MST, exact matching of odd-degree vertices, Euler tour,
//     shortcut. The matching is combinatorial, so cost grows as (k-1)!! in
//     the number k of odd-degree MST vertices.
//   - Held-Karp: open-path dynamic programming with parent backtracking.
//     Exact, O(n²·2ⁿ) time and O(n·2ⁿ) memory; refuses more than 16 points.
//
// The exact solvers are not size-guarded (except Held-Karp memory); callers
// bound the input. Long-running solvers check ctx sparsely and return
// ctx.Err() once it is done.
//
// Use New to build a solver by name and Names to list them.
package tsp
