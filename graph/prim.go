package graph

import (
	"container/heap"
	"fmt"
	"math/rand"
)

// PrimsMST builds a minimum spanning tree of g with Prim's algorithm.
//
// Steps:
//  1. Pick the start vertex uniformly at random from rng. A nil rng starts
//     at vertex 0; seeding policy belongs to the caller.
//  2. Activate the start vertex and push every edge leaving it onto a
//     min-heap of candidate edges.
//  3. Pop the cheapest candidate. If its far endpoint is already active the
//     candidate is stale and discarded (lazy deletion); otherwise the edge is
//     finalized into the tree, its endpoint activated, and the endpoint's
//     edges to inactive vertices pushed.
//  4. Stop when n-1 edges are finalized or the heap runs dry.
//
// Candidates with equal weight pop in (From, To) order, so a fixed rng gives
// a fixed tree.
//
// The returned tree is a new Graph of the same order with undirected edges.
// If some vertex is unreachable from the start vertex PrimsMST returns
// ErrDisconnected rather than a partial tree.
//
// Complexity: O(E log E) time, O(V + E) memory.
func (g *Graph) PrimsMST(rng *rand.Rand) (*Graph, error) {
	mst := NewGraph(g.n)
	if g.n <= 1 {
		return mst, nil
	}
	start := 0
	if rng != nil {
		start = rng.Intn(g.n)
	}

	var (
		active = make([]bool, g.n)
		pq     = &edgePQ{}
		added  int
	)
	heap.Init(pq)

	// activate marks u as part of the tree and offers its outgoing edges.
	activate := func(u int) {
		active[u] = true
		for _, v := range g.Neighbors(u) {
			if !active[v] {
				heap.Push(pq, Edge{From: u, To: v, Weight: g.adj[u][v]})
			}
		}
	}

	activate(start)
	for pq.Len() > 0 && added < g.n-1 {
		e := heap.Pop(pq).(Edge)
		if active[e.To] {
			continue // stale candidate: both endpoints already in the tree
		}
		mst.addMin(e.From, e.To, e.Weight)
		mst.addMin(e.To, e.From, e.Weight)
		added++
		activate(e.To)
	}

	if added < g.n-1 {
		return nil, fmt.Errorf("%w: spanning tree from vertex %d reached %d of %d vertices",
			ErrDisconnected, start, added+1, g.n)
	}

	return mst, nil
}

// edgePQ implements heap.Interface as a min-heap of candidate edges ordered
// by Weight, then From, then To.
type edgePQ []Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(Edge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
