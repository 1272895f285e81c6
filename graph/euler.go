package graph

import "fmt"

// EulerTour walks every edge of m exactly once with Fleury's algorithm and
// returns the traversed edges in order.
//
// Preconditions: m has zero or exactly two odd-degree vertices, and all of its
// edges lie in one connected component. Otherwise ErrNotEulerian is returned.
//
// Steps:
//  1. Start at the smallest odd-degree vertex if there is one (the walk must
//     end at the other), else at the smallest vertex that has an edge.
//  2. From the current vertex, take the first neighbor (ascending id) whose
//     edge is not a bridge; take a bridge only when nothing else is left.
//  3. Remove the edge, record it, move to its far end.
//  4. Stop when the current vertex has no edges. Every edge must be used.
//
// The walk runs on a private clone, so m is left intact. A multigraph with no
// edges has an empty tour.
//
// Complexity: O(E · (V + E)); each step may probe one bridge per neighbor.
func (m *MultiGraph) EulerTour() ([]Edge, error) {
	odd := m.OddVertices()
	if len(odd) != 0 && len(odd) != 2 {
		return nil, fmt.Errorf("%w: %d odd-degree vertices", ErrNotEulerian, len(odd))
	}

	total := m.EdgeCount()
	tour := make([]Edge, 0, total)
	if total == 0 {
		return tour, nil
	}

	var cur int
	if len(odd) == 2 {
		cur = odd[0]
	} else {
		for m.Degree(cur) == 0 {
			cur++
		}
	}

	work := m.Clone()
	for work.Degree(cur) > 0 {
		next, err := work.fleuryStep(cur)
		if err != nil {
			return nil, err
		}
		w, err := work.RemoveAnEdge(cur, next)
		if err != nil {
			return nil, err
		}
		tour = append(tour, Edge{From: cur, To: next, Weight: w})
		cur = next
	}

	if len(tour) != total {
		return nil, fmt.Errorf("%w: walk used %d of %d edges", ErrNotEulerian, len(tour), total)
	}

	return tour, nil
}

// fleuryStep picks the neighbor of u to walk to: the first one reached by a
// non-bridge edge, else the first neighbor.
func (m *MultiGraph) fleuryStep(u int) (int, error) {
	nbrs := m.Neighbors(u)
	if len(nbrs) == 1 {
		return nbrs[0], nil
	}
	for _, v := range nbrs {
		bridge, err := m.IsBridge(u, v)
		if err != nil {
			return 0, err
		}
		if !bridge {
			return v, nil
		}
	}

	return nbrs[0], nil
}

// ShortcutEulerTour turns an Euler tour into a vertex order by emitting each
// vertex the first time it appears on either end of an edge and skipping every
// later visit. Under the triangle inequality the shortcut is never longer
// than the tour.
//
// Complexity: O(len(tour)).
func ShortcutEulerTour(tour []Edge) []int {
	var (
		seen  = make(map[int]struct{}, len(tour)+1)
		order = make([]int, 0, len(tour)+1)
	)
	visit := func(v int) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		order = append(order, v)
	}
	for _, e := range tour {
		visit(e.From)
		visit(e.To)
	}

	return order
}
