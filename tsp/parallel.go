package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tourkit/geometry"
)

// NearestNeighborParallelSolver runs the NearestNeighbor walks on a bounded
// pool of goroutines. The candidate rows are built once and shared
// read-only; each walk writes only its own slot. The reduction is the same
// as the serial solver's, so both return the same path.
type NearestNeighborParallelSolver struct{ instance }

// NewNearestNeighborParallel returns a NearestNeighborParallelSolver over a
// copy of points. Options.Workers bounds the goroutines.
func NewNearestNeighborParallel(width, height float64, points geometry.Path, opts Options) *NearestNeighborParallelSolver {
	return &NearestNeighborParallelSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *NearestNeighborParallelSolver) Name() string { return NearestNeighborParallel }

// ComputePath implements Solver. The first failing walk cancels the rest and
// its error is returned; no partial result is reduced.
func (s *NearestNeighborParallelSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	n := len(s.points)
	if n == 0 {
		return geometry.Path{}, nil
	}

	var (
		rows  = candidateRows(s.points, s.opts.Seed)
		walks = make([]walk, n)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for start := 0; start < n; start++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			walks[start] = nearestWalk(rows, start)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := bestWalk(walks)
	s.opts.Logger.Debug("parallel nearest neighbor done",
		"workers", s.opts.Workers, "start", best.order[0], "distance", best.dist)

	return s.pick(best.order), nil
}
