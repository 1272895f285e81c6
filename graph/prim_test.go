package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourkit/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denseMSTWeight is an independent O(n²) Prim over g's weights (start 0).
func denseMSTWeight(g *graph.Graph) float64 {
	n := g.Order()
	in := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	best[0] = 0
	var total float64
	for it := 0; it < n; it++ {
		u := -1
		for v := 0; v < n; v++ {
			if !in[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		in[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if w, ok := g.Weight(u, v); ok && !in[v] && w < best[v] {
				best[v] = w
			}
		}
	}

	return total
}

// TestPrimsMST_Triangle: A-B(1), B-C(2), A-C(3) ⇒ tree {A-B, B-C}, weight 3.
func TestPrimsMST_Triangle(t *testing.T) {
	g := graph.NewGraph(3)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddUndirectedEdge(1, 2, 2))
	require.NoError(t, g.AddUndirectedEdge(0, 2, 3))

	for seed := int64(0); seed < 6; seed++ {
		mst, err := g.PrimsMST(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, []graph.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, mst.Edges())
		assert.Equal(t, 3.0, mst.TotalWeight())
	}
}

// TestPrimsMST_MatchesDensePrim compares against an independent implementation
// and checks spanning-tree shape for every start vertex choice.
func TestPrimsMST_MatchesDensePrim(t *testing.T) {
	for _, n := range []int{2, 5, 17, 40} {
		g := completeGraph(t, int64(n), n)
		want := denseMSTWeight(g)

		for seed := int64(0); seed < 4; seed++ {
			mst, err := g.PrimsMST(rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			assert.Equal(t, n, mst.Order())
			assert.Equal(t, n-1, mst.EdgeCount())
			assert.InDelta(t, want, mst.TotalWeight(), 1e-9)
			assert.Equal(t, n, graph.NewMultiGraphFrom(mst).ReachableFromHere(0), "tree must span")
		}
	}
}

func TestPrimsMST_NilRNGIsDeterministic(t *testing.T) {
	g := completeGraph(t, 3, 12)
	a, err := g.PrimsMST(nil)
	require.NoError(t, err)
	b, err := g.PrimsMST(nil)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestPrimsMST_NilRNGStartsAtZero(t *testing.T) {
	// Equal weights: the tree is the star around the start vertex.
	g := graph.NewGraph(5)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			require.NoError(t, g.AddUndirectedEdge(i, j, 1))
		}
	}

	mst, err := g.PrimsMST(nil)
	require.NoError(t, err)
	assert.Len(t, mst.Neighbors(0), 4)
}

func TestPrimsMST_Trivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		mst, err := graph.NewGraph(n).PrimsMST(nil)
		require.NoError(t, err)
		assert.Equal(t, n, mst.Order())
		assert.Zero(t, mst.EdgeCount())
	}
}

func TestPrimsMST_Disconnected(t *testing.T) {
	g := graph.NewGraph(4)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, g.AddUndirectedEdge(2, 3, 1))

	mst, err := g.PrimsMST(rand.New(rand.NewSource(0)))
	assert.ErrorIs(t, err, graph.ErrDisconnected)
	assert.Nil(t, mst)
}
