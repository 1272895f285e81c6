package graph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourkit/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireValidTour asserts that tour is a connected walk using every edge of m
// exactly once.
func requireValidTour(t *testing.T, m *graph.MultiGraph, tour []graph.Edge, edges []graph.Edge) {
	t.Helper()
	require.Len(t, tour, m.EdgeCount())

	for i := 1; i < len(tour); i++ {
		require.Equal(t, tour[i-1].To, tour[i].From, "walk breaks at step %d", i)
	}

	want := make(map[edgeKey]int)
	for _, e := range edges {
		want[keyOf(e)]++
	}
	got := make(map[edgeKey]int)
	for _, e := range tour {
		got[keyOf(e)]++
	}
	require.Equal(t, want, got)
}

func TestEulerTour_Triangle(t *testing.T) {
	m := triangle(t)
	tour, err := m.EulerTour()
	require.NoError(t, err)
	requireValidTour(t, m, tour, []graph.Edge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}, {From: 1, To: 2, Weight: 1}})

	assert.Equal(t, 0, tour[0].From, "no odd vertex: start at the smallest vertex")
	assert.Equal(t, tour[0].From, tour[len(tour)-1].To, "circuit closes")
	assert.Equal(t, 3, m.EdgeCount(), "input is not consumed")
}

// TestEulerTour_OpenTrail: two odd vertices force start and end.
func TestEulerTour_OpenTrail(t *testing.T) {
	// Square 0-1-2-3-0 plus chord 1-3: vertices 1 and 3 are odd.
	edges := []graph.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1},
		{From: 3, To: 0, Weight: 1}, {From: 1, To: 3, Weight: 1.5},
	}
	m := graph.NewMultiGraph(4)
	addAll(t, m, edges...)

	tour, err := m.EulerTour()
	require.NoError(t, err)
	requireValidTour(t, m, tour, edges)
	assert.Equal(t, 1, tour[0].From)
	assert.Equal(t, 3, tour[len(tour)-1].To)
}

// TestEulerTour_BridgeLast: a bow-tie joined by a bridge must cross it only once
// the near side is exhausted.
func TestEulerTour_BridgeLast(t *testing.T) {
	// Triangle 0-1-2, bridge 2-3, triangle 3-4-5 closed by doubling 2-3 so the
	// whole thing is Eulerian.
	edges := []graph.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 0, Weight: 1},
		{From: 2, To: 3, Weight: 2}, {From: 2, To: 3, Weight: 2},
		{From: 3, To: 4, Weight: 1}, {From: 4, To: 5, Weight: 1}, {From: 5, To: 3, Weight: 1},
	}
	m := graph.NewMultiGraph(6)
	addAll(t, m, edges...)

	tour, err := m.EulerTour()
	require.NoError(t, err)
	requireValidTour(t, m, tour, edges)
}

// TestEulerTour_MSTPlusMatching builds the Christofides multigraph on random
// points and checks the tour invariants.
func TestEulerTour_MSTPlusMatching(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := completeGraph(t, seed, 16)
		mst, err := g.PrimsMST(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		match, err := g.MinCostPerfectMatchingOn(mst.OddVertices())
		require.NoError(t, err)

		m := graph.NewMultiGraphFrom(mst)
		edges := mst.Edges()
		for _, e := range match.Edges() {
			require.NoError(t, m.AddUndirectedEdge(e.From, e.To, e.Weight))
			edges = append(edges, e)
		}
		require.Empty(t, m.OddVertices())

		tour, err := m.EulerTour()
		require.NoError(t, err)
		requireValidTour(t, m, tour, edges)

		order := graph.ShortcutEulerTour(tour)
		require.Len(t, order, 16)
		seen := make(map[int]bool)
		for _, v := range order {
			require.False(t, seen[v], "duplicate vertex %d", v)
			seen[v] = true
		}
	}
}

func TestEulerTour_Empty(t *testing.T) {
	tour, err := graph.NewMultiGraph(5).EulerTour()
	require.NoError(t, err)
	assert.Empty(t, tour)
}

func TestEulerTour_TooManyOddVertices(t *testing.T) {
	// Star with three leaves: four odd vertices.
	m := graph.NewMultiGraph(4)
	addAll(t, m, graph.Edge{From: 0, To: 1, Weight: 1}, graph.Edge{From: 0, To: 2, Weight: 1}, graph.Edge{From: 0, To: 3, Weight: 1})

	_, err := m.EulerTour()
	assert.ErrorIs(t, err, graph.ErrNotEulerian)
}

func TestEulerTour_DisconnectedEdges(t *testing.T) {
	m := graph.NewMultiGraph(6)
	addAll(t, m,
		graph.Edge{From: 0, To: 1, Weight: 1}, graph.Edge{From: 1, To: 2, Weight: 1}, graph.Edge{From: 2, To: 0, Weight: 1},
		graph.Edge{From: 3, To: 4, Weight: 1}, graph.Edge{From: 4, To: 5, Weight: 1}, graph.Edge{From: 5, To: 3, Weight: 1},
	)

	_, err := m.EulerTour()
	assert.ErrorIs(t, err, graph.ErrNotEulerian)
}

func TestShortcutEulerTour(t *testing.T) {
	tour := []graph.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}, {From: 0, To: 3}, {From: 3, To: 2}, {From: 2, To: 0},
	}
	assert.Equal(t, []int{0, 1, 2, 3}, graph.ShortcutEulerTour(tour))
	assert.Empty(t, graph.ShortcutEulerTour(nil))
}
