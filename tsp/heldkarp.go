package tsp

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/tourkit/geometry"
)

// MaxHeldKarpPoints is the largest input HeldKarpSolver accepts.
// The tables hold n·2ⁿ entries.
const MaxHeldKarpPoints = 16

// HeldKarpSolver finds a shortest open path by dynamic programming over
// subsets and rebuilds the path from a parent table.
//
// State: cost[mask][j] is the length of the shortest path that visits
// exactly the vertices of mask and ends at j (any start).
//
//	cost[{j}][j] = 0
//	cost[mask][j] = min over i in mask\{j} of cost[mask\{j}][i] + d(i, j)
//
// The answer is min over j of cost[full][j]; parent[mask][j] records the
// arg-min i, so the path is read back from the end.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
type HeldKarpSolver struct{ instance }

// NewHeldKarp returns a HeldKarpSolver over a copy of points.
func NewHeldKarp(width, height float64, points geometry.Path, opts Options) *HeldKarpSolver {
	return &HeldKarpSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *HeldKarpSolver) Name() string { return HeldKarp }

// ComputePath implements Solver.
// Errors: ErrTooManyPoints above MaxHeldKarpPoints; ctx.Err() on cancellation.
func (s *HeldKarpSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	n := len(s.points)
	if n > MaxHeldKarpPoints {
		return nil, fmt.Errorf("%w: held-karp accepts at most %d, got %d", ErrTooManyPoints, MaxHeldKarpPoints, n)
	}
	if n <= 1 {
		return geometry.Clone(s.points), nil
	}

	var (
		dm     = geometry.DistanceMatrix(s.points)
		full   = 1<<n - 1
		inf    = math.Inf(1)
		cost   = make([]float64, (full+1)*n)
		parent = make([]int8, (full+1)*n)
		c      = canceller{ctx: ctx}
		mask   int
		i, j   int
		prev   int
		cand   float64
	)
	for i = range cost {
		cost[i] = inf
		parent[i] = -1
	}
	for j = 0; j < n; j++ {
		cost[(1<<j)*n+j] = 0
	}

	for mask = 1; mask <= full; mask++ {
		if err := c.tick(); err != nil {
			return nil, err
		}
		for j = 0; j < n; j++ {
			if mask&(1<<j) == 0 || mask == 1<<j {
				continue
			}
			prev = mask &^ (1 << j)
			for i = 0; i < n; i++ {
				if prev&(1<<i) == 0 {
					continue
				}
				cand = cost[prev*n+i] + dm.At(i, j)
				// The first predecessor is always recorded, so every
				// reachable state has a parent even at +Inf cost.
				if parent[mask*n+j] < 0 || cand < cost[mask*n+j] {
					cost[mask*n+j] = cand
					parent[mask*n+j] = int8(i)
				}
			}
		}
	}

	// Cheapest end vertex.
	end := 0
	for j = 1; j < n; j++ {
		if cost[full*n+j] < cost[full*n+end] {
			end = j
		}
	}
	s.opts.Logger.Debug("held-karp done", "distance", cost[full*n+end])

	// Walk parents back from (full, end).
	order := make([]int, n)
	mask, j = full, end
	for k := n - 1; k >= 0; k-- {
		order[k] = j
		p := int(parent[mask*n+j])
		mask &^= 1 << j
		j = p
	}

	return s.pick(order), nil
}
