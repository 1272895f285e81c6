package graph

import (
	"fmt"
	"math"
	"slices"
)

// NewGraph returns an edgeless Graph over vertices 0..n-1.
// A negative n is treated as 0.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{n: n, adj: make(map[int]map[int]float64)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// AddUndirectedEdge inserts i→j and j→i with weight w. If an edge already
// exists between i and j the lower of the stored and the new weight is kept,
// independently per direction.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(i, j int, w float64) error {
	if err := validateEdge(g.n, i, j, w); err != nil {
		return err
	}
	g.addMin(i, j, w)
	g.addMin(j, i, w)

	return nil
}

// AddDirectedEdge inserts i→j with weight w under the same min-merge rule as
// AddUndirectedEdge.
func (g *Graph) AddDirectedEdge(i, j int, w float64) error {
	if err := validateEdge(g.n, i, j, w); err != nil {
		return err
	}
	g.addMin(i, j, w)

	return nil
}

// addMin stores w for i→j unless a lower weight is already present.
func (g *Graph) addMin(i, j int, w float64) {
	row, ok := g.adj[i]
	if !ok {
		row = make(map[int]float64)
		g.adj[i] = row
	}
	if old, exists := row[j]; exists && old <= w {
		return
	}
	row[j] = w
}

// Weight returns the weight of i→j and whether that edge exists.
func (g *Graph) Weight(i, j int) (float64, bool) {
	w, ok := g.adj[i][j]

	return w, ok
}

// Degree returns the number of distinct neighbors of i.
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// Neighbors returns the neighbors of i in ascending order.
func (g *Graph) Neighbors(i int) []int {
	return sortedKeys(g.adj[i])
}

// Edges lists every edge once. A symmetric pair i↔j with equal weights is
// reported as a single Edge with From < To; any other entry is reported as
// its own directed Edge. Order: ascending (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	var (
		out = make([]Edge, 0)
		i   int
		j   int
	)
	for i = 0; i < g.n; i++ {
		for _, j = range sortedKeys(g.adj[i]) {
			w := g.adj[i][j]
			if back, ok := g.adj[j][i]; ok && back == w && j < i {
				continue // already reported from the lower endpoint
			}
			out = append(out, Edge{From: i, To: j, Weight: w})
		}
	}

	return out
}

// EdgeCount returns len(g.Edges()) without allocating the slice.
func (g *Graph) EdgeCount() int {
	var count int
	for i, row := range g.adj {
		for j, w := range row {
			if back, ok := g.adj[j][i]; ok && back == w && j < i {
				continue
			}
			count++
		}
	}

	return count
}

// TotalWeight sums the weights of g.Edges().
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}

	return sum
}

// OddVertices returns, in ascending order, the vertices whose number of
// distinct neighbors is odd.
func (g *Graph) OddVertices() []int {
	var (
		odd = make([]int, 0)
		v   int
	)
	for v = 0; v < g.n; v++ {
		if len(g.adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// validateEdge checks endpoints and weight shared by both graph kinds.
func validateEdge(n, i, j int, w float64) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: edge %d-%d in graph of order %d", ErrVertexOutOfRange, i, j, n)
	}
	if i == j {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, i)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}

	return nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
