package tsp

import (
	"context"
	"math"

	"github.com/katalvlaran/tourkit/geometry"
)

// BruteForceSolver enumerates every permutation of the points in
// lexicographic index order and keeps the first shortest one.
//
// Exact but O(n!·n): impractical beyond ten or so points.
type BruteForceSolver struct{ instance }

// NewBruteForce returns a BruteForceSolver over a copy of points.
func NewBruteForce(width, height float64, points geometry.Path, opts Options) *BruteForceSolver {
	return &BruteForceSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *BruteForceSolver) Name() string { return BruteForce }

// ComputePath implements Solver.
func (s *BruteForceSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	var (
		n        = len(s.points)
		dm       = geometry.DistanceMatrix(s.points)
		perm     = identity(n)
		best     = identity(n)
		bestDist = math.Inf(1)
		c        = canceller{ctx: ctx}
		d        float64
	)
	if n == 0 {
		return geometry.Path{}, nil
	}

	for {
		if err := c.tick(); err != nil {
			return nil, err
		}
		d = pathLength(dm, perm)
		if d < bestDist {
			bestDist = d
			copy(best, perm)
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return s.pick(best), nil
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. The last permutation is left unchanged.
//
// Steps:
//  1. Find the rightmost i with p[i] < p[i+1]; none ⇒ p is the last one.
//  2. Find the rightmost j > i with p[j] > p[i] and swap them.
//  3. Reverse the suffix after i.
func nextPermutation(p []int) bool {
	var i, j int
	for i = len(p) - 2; i >= 0 && p[i] >= p[i+1]; i-- {
	}
	if i < 0 {
		return false
	}
	for j = len(p) - 1; p[j] <= p[i]; j-- {
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
