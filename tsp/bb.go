package tsp

import (
	"context"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tourkit/geometry"
)

// BranchAndBoundSolver runs a depth-first search over partial paths rooted at
// every start vertex and abandons a branch as soon as its length reaches the
// best complete path found so far.
//
// Exact. Worst case O(n!), in practice far less; still keep n small.
type BranchAndBoundSolver struct{ instance }

// NewBranchAndBound returns a BranchAndBoundSolver over a copy of points.
func NewBranchAndBound(width, height float64, points geometry.Path, opts Options) *BranchAndBoundSolver {
	return &BranchAndBoundSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *BranchAndBoundSolver) Name() string { return BranchAndBound }

// ComputePath implements Solver. Every improvement of the incumbent is logged
// at debug level.
func (s *BranchAndBoundSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	n := len(s.points)
	if n == 0 {
		return geometry.Path{}, nil
	}

	e := &bbEngine{
		n:        n,
		dm:       geometry.DistanceMatrix(s.points),
		visited:  make([]bool, n),
		path:     make([]int, 0, n),
		best:     make([]int, n),
		bestDist: math.Inf(1),
		cancel:   canceller{ctx: ctx},
		logger:   s.opts.Logger,
	}

	var start int
	for start = 0; start < n; start++ {
		e.visited[start] = true
		e.path = append(e.path[:0], start)
		if err := e.dfs(start, 0); err != nil {
			return nil, err
		}
		e.visited[start] = false
	}

	return s.pick(e.best), nil
}

// bbEngine holds the search state of one ComputePath call.
type bbEngine struct {
	n  int
	dm *mat.SymDense

	// Current partial path and its membership.
	visited []bool
	path    []int

	// Incumbent. found is false until the first complete path, which is
	// taken even when its length is +Inf.
	best     []int
	bestDist float64
	found    bool

	cancel canceller
	logger *log.Logger
}

// dfs extends the partial path ending at last, whose length is dist.
// Candidates are tried in ascending index order.
func (e *bbEngine) dfs(last int, dist float64) error {
	if err := e.cancel.tick(); err != nil {
		return err
	}
	if e.found && dist >= e.bestDist {
		return nil
	}
	if len(e.path) == e.n {
		e.found = true
		e.bestDist = dist
		copy(e.best, e.path)
		e.logger.Debug("new best", "distance", dist, "start", e.path[0])

		return nil
	}

	var v int
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		e.visited[v] = true
		e.path = append(e.path, v)
		if err := e.dfs(v, dist+e.dm.At(last, v)); err != nil {
			return err
		}
		e.path = e.path[:len(e.path)-1]
		e.visited[v] = false
	}

	return nil
}
