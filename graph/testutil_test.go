package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourkit/graph"
	"github.com/stretchr/testify/require"
)

// completeGraph builds the complete Euclidean graph over n random points in
// [0,100)² drawn from seed.
func completeGraph(t *testing.T, seed int64, n int) *graph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = r.Float64()*100, r.Float64()*100
	}
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddUndirectedEdge(i, j, math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
		}
	}

	return g
}

// edgeKey identifies an undirected edge instance independent of direction.
type edgeKey struct {
	lo, hi int
	w      float64
}

func keyOf(e graph.Edge) edgeKey {
	if e.From > e.To {
		return edgeKey{lo: e.To, hi: e.From, w: e.Weight}
	}

	return edgeKey{lo: e.From, hi: e.To, w: e.Weight}
}

// addAll inserts undirected edges into m, failing the test on error.
func addAll(t *testing.T, m *graph.MultiGraph, edges ...graph.Edge) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, m.AddUndirectedEdge(e.From, e.To, e.Weight))
	}
}
