package tsp

import (
	"cmp"
	"context"
	"slices"

	"github.com/katalvlaran/tourkit/geometry"
)

// candidate is one entry of a nearest-neighbor row: the distance to j and
// the seeded tiebreaker drawn for the pair.
type candidate struct {
	dist float64
	tie  int
	j    int
}

// compareCandidates orders by distance, then tiebreaker, then index.
func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c
	}
	if c := cmp.Compare(a.tie, b.tie); c != 0 {
		return c
	}

	return cmp.Compare(a.j, b.j)
}

// candidateRows builds, for every i, all j sorted by compareCandidates.
// One tiebreaker in 1..100 is drawn per (i, j) in row-major order from a
// stream seeded with seed, so equal seeds give equal rows.
//
// Complexity: O(n² log n).
func candidateRows(points geometry.Path, seed int64) [][]candidate {
	var (
		n    = len(points)
		dm   = geometry.DistanceMatrix(points)
		rng  = rngFromSeed(seed)
		rows = make([][]candidate, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]candidate, n)
		for j = 0; j < n; j++ {
			rows[i][j] = candidate{dist: dm.At(i, j), tie: rng.Intn(100) + 1, j: j}
		}
	}
	for i = 0; i < n; i++ {
		slices.SortFunc(rows[i], compareCandidates)
	}

	return rows
}

// walk is the result of one greedy walk.
type walk struct {
	dist  float64
	order []int
}

// nearestWalk greedily walks from start to the first unvisited entry of the
// current row until every vertex is visited. rows is only read.
//
// Complexity: O(n²).
func nearestWalk(rows [][]candidate, start int) walk {
	var (
		n    = len(rows)
		used = make([]bool, n)
		cur  = start
		w    = walk{order: make([]int, 1, n)}
	)
	used[start] = true
	w.order[0] = start
	for len(w.order) < n {
		for _, c := range rows[cur] {
			if !used[c.j] {
				w.dist += c.dist
				cur = c.j
				break
			}
		}
		used[cur] = true
		w.order = append(w.order, cur)
	}

	return w
}

// bestWalk returns the shortest walk, preferring the lowest start on ties.
// walks must be non-empty; walks[0] wins when every length is +Inf.
func bestWalk(walks []walk) walk {
	best := walks[0]
	for _, w := range walks[1:] {
		if w.dist < best.dist {
			best = w
		}
	}

	return best
}

// NearestNeighborSolver walks greedily from every start vertex and keeps the
// shortest walk.
type NearestNeighborSolver struct{ instance }

// NewNearestNeighbor returns a NearestNeighborSolver over a copy of points.
func NewNearestNeighbor(width, height float64, points geometry.Path, opts Options) *NearestNeighborSolver {
	return &NearestNeighborSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *NearestNeighborSolver) Name() string { return NearestNeighbor }

// ComputePath implements Solver. ctx is checked before every start vertex.
//
// Complexity: O(n³).
func (s *NearestNeighborSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	n := len(s.points)
	if n == 0 {
		return geometry.Path{}, nil
	}

	var (
		rows  = candidateRows(s.points, s.opts.Seed)
		walks = make([]walk, n)
		start int
	)
	for start = 0; start < n; start++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		walks[start] = nearestWalk(rows, start)
	}
	best := bestWalk(walks)
	s.opts.Logger.Debug("nearest neighbor done", "start", best.order[0], "distance", best.dist)

	return s.pick(best.order), nil
}
