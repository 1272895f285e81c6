package graph

import "errors"

// Sentinel errors for graph construction and algorithms.
var (
	// ErrVertexOutOfRange indicates a vertex id outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: weight must be finite")

	// ErrDisconnected indicates that a spanning tree cannot cover every vertex.
	ErrDisconnected = errors.New("graph: graph is disconnected")

	// ErrOddVertexCount indicates a perfect matching was requested on an odd vertex set.
	ErrOddVertexCount = errors.New("graph: perfect matching requires an even number of vertices")

	// ErrDuplicateVertex indicates the same vertex was listed twice for matching.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")

	// ErrNoPerfectMatching indicates missing edges make every pairing infeasible.
	ErrNoPerfectMatching = errors.New("graph: no perfect matching exists")

	// ErrEdgeNotFound indicates removal of an edge that does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrAsymmetricEdge indicates the i→j and j→i parallel lists disagree.
	ErrAsymmetricEdge = errors.New("graph: asymmetric parallel edge")

	// ErrNotEulerian indicates the multigraph admits no Euler tour.
	ErrNotEulerian = errors.New("graph: no Euler tour")
)

// Edge is a single weighted step From→To. Euler tours are returned as an
// ordered slice of Edge values.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is a weighted graph over vertices 0..n-1 with at most one edge per
// ordered pair. adj[i][j] holds the weight of i→j; an undirected edge is two
// entries with the same weight.
type Graph struct {
	n   int
	adj map[int]map[int]float64
}

// MultiGraph is a weighted graph over vertices 0..n-1 that permits parallel
// edges. adj[i][j] lists the weights of every i→j edge in insertion order.
// Lists are never empty: the last removal deletes the entry.
type MultiGraph struct {
	n   int
	adj map[int]map[int][]float64
}
