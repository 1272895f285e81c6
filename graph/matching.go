package graph

import "fmt"

// MinCostPerfectMatching returns the exact minimum-cost perfect matching over
// all vertices of g. It is MinCostPerfectMatchingOn(0..n-1).
func (g *Graph) MinCostPerfectMatching() (*Graph, error) {
	all := make([]int, g.n)
	for v := range all {
		all[v] = v
	}

	return g.MinCostPerfectMatchingOn(all)
}

// MinCostPerfectMatchingOn computes the exact minimum-cost perfect matching of
// the subgraph induced by vertices, using g's edge weights.
//
// The search enumerates every way to partition the vertex set into pairs: the
// first unmatched vertex is paired in turn with each later unmatched vertex it
// has an edge to, and the rest is partitioned recursively. A branch is cut as
// soon as its partial cost reaches the best complete pairing found so far,
// which keeps the result exact.
//
// The result is a new Graph of the same order as g holding one undirected edge
// per matched pair. An empty vertex set yields an empty matching.
//
// Errors:
//   - ErrVertexOutOfRange, ErrDuplicateVertex for malformed input,
//   - ErrOddVertexCount when len(vertices) is odd,
//   - ErrNoPerfectMatching when missing edges leave no complete pairing.
//
// Complexity: O((k-1)!!) pairings for k vertices in the worst case; only
// suitable for small k.
func (g *Graph) MinCostPerfectMatchingOn(vertices []int) (*Graph, error) {
	seen := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
		}
		seen[v] = struct{}{}
	}
	if len(vertices)&1 == 1 {
		return nil, fmt.Errorf("%w: got %d", ErrOddVertexCount, len(vertices))
	}

	m := &matcher{
		g:     g,
		verts: append([]int(nil), vertices...),
		free:  make([]bool, len(vertices)),
		cur:   make([]int, 0, len(vertices)),
	}
	for i := range m.free {
		m.free[i] = true
	}
	m.search(0, 0)

	if !m.found {
		return nil, ErrNoPerfectMatching
	}

	out := NewGraph(g.n)
	for i := 0; i < len(m.best); i += 2 {
		u, v := m.verts[m.best[i]], m.verts[m.best[i+1]]
		w, _ := g.pairWeight(u, v)
		out.addMin(u, v, w)
		out.addMin(v, u, w)
	}

	return out, nil
}

// matcher holds the recursive pairing search state. Pairs are stored as
// consecutive positions into verts.
type matcher struct {
	g     *Graph
	verts []int
	free  []bool

	cur []int

	best     []int
	bestCost float64
	found    bool
}

// search extends the current partial pairing of the given cost; matched
// counts the vertices already paired.
func (m *matcher) search(matched int, cost float64) {
	if m.found && cost >= m.bestCost {
		return
	}
	if matched == len(m.verts) {
		m.best = append(m.best[:0], m.cur...)
		m.bestCost = cost
		m.found = true

		return
	}

	first := 0
	for !m.free[first] {
		first++
	}
	m.free[first] = false

	for k := first + 1; k < len(m.verts); k++ {
		if !m.free[k] {
			continue
		}
		w, ok := m.g.pairWeight(m.verts[first], m.verts[k])
		if !ok {
			continue
		}
		m.free[k] = false
		m.cur = append(m.cur, first, k)

		m.search(matched+2, cost+w)

		m.cur = m.cur[:len(m.cur)-2]
		m.free[k] = true
	}

	m.free[first] = true
}

// pairWeight returns the weight joining u and v in either direction, preferring
// u→v.
func (g *Graph) pairWeight(u, v int) (float64, bool) {
	if w, ok := g.adj[u][v]; ok {
		return w, true
	}
	w, ok := g.adj[v][u]

	return w, ok
}
