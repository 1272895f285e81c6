package tsp

import (
	"context"
	"math"

	"github.com/katalvlaran/tourkit/geometry"
)

// RandomSamplerSolver shuffles the points Options.Samples times and keeps
// the shortest ordering seen. Each shuffle starts from the previous one.
type RandomSamplerSolver struct{ instance }

// NewRandomSampler returns a RandomSamplerSolver over a copy of points.
func NewRandomSampler(width, height float64, points geometry.Path, opts Options) *RandomSamplerSolver {
	return &RandomSamplerSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *RandomSamplerSolver) Name() string { return RandomSampler }

// ComputePath implements Solver. ctx is checked before every sample.
//
// Complexity: O(samples·n) time, O(n²) memory for the distance matrix.
func (s *RandomSamplerSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	var (
		n        = len(s.points)
		dm       = geometry.DistanceMatrix(s.points)
		rng      = rngFromSeed(s.opts.Seed)
		perm     = identity(n)
		best     = make([]int, n)
		bestDist = math.Inf(1)
		d        float64
		i        int
	)
	if n == 0 {
		return geometry.Path{}, nil
	}

	for i = 0; i < s.opts.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		shuffleIntsInPlace(perm, rng)
		d = pathLength(dm, perm)
		// The first sample is always kept so an overflowing length
		// still yields a permutation.
		if i == 0 || d < bestDist {
			bestDist = d
			copy(best, perm)
		}
	}
	s.opts.Logger.Debug("sampling done", "samples", s.opts.Samples, "distance", bestDist)

	return s.pick(best), nil
}
