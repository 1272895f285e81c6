package graph

import "fmt"

// NewMultiGraph returns an edgeless MultiGraph over vertices 0..n-1.
// A negative n is treated as 0.
func NewMultiGraph(n int) *MultiGraph {
	if n < 0 {
		n = 0
	}

	return &MultiGraph{n: n, adj: make(map[int]map[int][]float64)}
}

// NewMultiGraphFrom copies every edge entry of g into a new MultiGraph of the
// same order. Each i→j weight becomes a one-element parallel list, so an
// undirected Graph edge becomes one undirected MultiGraph edge.
func NewMultiGraphFrom(g *Graph) *MultiGraph {
	m := NewMultiGraph(g.n)
	for i, row := range g.adj {
		for j, w := range row {
			m.push(i, j, w)
		}
	}

	return m
}

// Clone returns a deep copy of m.
func (m *MultiGraph) Clone() *MultiGraph {
	out := NewMultiGraph(m.n)
	for i, row := range m.adj {
		cp := make(map[int][]float64, len(row))
		for j, ws := range row {
			cp[j] = append([]float64(nil), ws...)
		}
		out.adj[i] = cp
	}

	return out
}

// Order returns the number of vertices.
func (m *MultiGraph) Order() int { return m.n }

// AddUndirectedEdge appends one parallel edge i↔j of weight w.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrBadWeight.
func (m *MultiGraph) AddUndirectedEdge(i, j int, w float64) error {
	if err := validateEdge(m.n, i, j, w); err != nil {
		return err
	}
	m.push(i, j, w)
	m.push(j, i, w)

	return nil
}

// push appends w to the i→j list.
func (m *MultiGraph) push(i, j int, w float64) {
	row, ok := m.adj[i]
	if !ok {
		row = make(map[int][]float64)
		m.adj[i] = row
	}
	row[j] = append(row[j], w)
}

// pop removes the most recent weight from the i→j list, deleting the entry
// (and the empty row) once nothing is left.
func (m *MultiGraph) pop(i, j int) {
	ws := m.adj[i][j]
	if len(ws) == 1 {
		delete(m.adj[i], j)
		if len(m.adj[i]) == 0 {
			delete(m.adj, i)
		}

		return
	}
	m.adj[i][j] = ws[:len(ws)-1]
}

// RemoveAnEdge removes exactly one parallel edge between i and j, from both
// the i→j and the j→i list, and returns its weight.
//
// The two removed instances must carry the same weight. If they do not, the
// multigraph is left untouched and ErrAsymmetricEdge is returned.
//
// Errors: ErrVertexOutOfRange, ErrEdgeNotFound, ErrAsymmetricEdge.
// Complexity: O(1).
func (m *MultiGraph) RemoveAnEdge(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: edge %d-%d in graph of order %d", ErrVertexOutOfRange, i, j, m.n)
	}
	var (
		fwd = m.adj[i][j]
		bwd = m.adj[j][i]
	)
	if len(fwd) == 0 || len(bwd) == 0 {
		return 0, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	var (
		wf = fwd[len(fwd)-1]
		wb = bwd[len(bwd)-1]
	)
	if wf != wb {
		return 0, fmt.Errorf("%w: %d→%d weighs %v but %d→%d weighs %v", ErrAsymmetricEdge, i, j, wf, j, i, wb)
	}
	m.pop(i, j)
	m.pop(j, i)

	return wf, nil
}

// Degree returns the number of edge ends at i, counting parallel edges.
func (m *MultiGraph) Degree(i int) int {
	var d int
	for _, ws := range m.adj[i] {
		d += len(ws)
	}

	return d
}

// Neighbors returns the distinct neighbors of i in ascending order.
func (m *MultiGraph) Neighbors(i int) []int {
	return sortedKeys(m.adj[i])
}

// Multiplicity returns the number of parallel i→j edges.
func (m *MultiGraph) Multiplicity(i, j int) int {
	return len(m.adj[i][j])
}

// EdgeCount returns the number of undirected edges, counting parallel ones.
// It assumes the symmetric layout maintained by AddUndirectedEdge.
func (m *MultiGraph) EdgeCount() int {
	var ends int
	for _, row := range m.adj {
		for _, ws := range row {
			ends += len(ws)
		}
	}

	return ends / 2
}

// OddVertices returns, in ascending order, the vertices of odd Degree.
func (m *MultiGraph) OddVertices() []int {
	var (
		odd = make([]int, 0)
		v   int
	)
	for v = 0; v < m.n; v++ {
		if m.Degree(v)&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}
