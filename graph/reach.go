package graph

// ReachableFromHere counts the vertices reachable from src (src included)
// along the current edges. An out-of-range src reaches nothing.
//
// The traversal is a breadth-first search over an explicit queue, so deep
// chains cannot exhaust the goroutine stack.
//
// Complexity: O(V + E).
func (m *MultiGraph) ReachableFromHere(src int) int {
	if src < 0 || src >= m.n {
		return 0
	}

	var (
		visited = make([]bool, m.n)
		queue   = make([]int, 0, m.n)
		head    int
	)
	visited[src] = true
	queue = append(queue, src)

	for head < len(queue) {
		u := queue[head]
		head++
		for v := range m.adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(queue)
}

// IsBridge reports whether removing one u–v edge would shrink the set of
// vertices reachable from u. Parallel edges matter: with two u–v edges,
// neither is a bridge.
//
// Steps: count reachable vertices, remove one u–v edge, count again, put the
// edge back, compare. The multigraph is unchanged on return.
//
// Errors: those of RemoveAnEdge (the edge must exist).
// Complexity: O(V + E).
func (m *MultiGraph) IsBridge(u, v int) (bool, error) {
	before := m.ReachableFromHere(u)

	w, err := m.RemoveAnEdge(u, v)
	if err != nil {
		return false, err
	}
	after := m.ReachableFromHere(u)

	m.push(u, v, w)
	m.push(v, u, w)

	return after != before, nil
}
