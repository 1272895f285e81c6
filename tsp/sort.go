package tsp

import (
	"cmp"
	"context"
	"slices"

	"github.com/katalvlaran/tourkit/geometry"
)

// HorizontalSortSolver orders points by ascending x.
type HorizontalSortSolver struct{ instance }

// NewHorizontalSort returns a HorizontalSortSolver over a copy of points.
func NewHorizontalSort(width, height float64, points geometry.Path, opts Options) *HorizontalSortSolver {
	return &HorizontalSortSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *HorizontalSortSolver) Name() string { return HorizontalSort }

// ComputePath implements Solver. Equal x keeps input order.
func (s *HorizontalSortSolver) ComputePath(_ context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	return sortedBy(s.points, func(p geometry.Point) float64 { return p.X }), nil
}

// VerticalSortSolver orders points by ascending y.
type VerticalSortSolver struct{ instance }

// NewVerticalSort returns a VerticalSortSolver over a copy of points.
func NewVerticalSort(width, height float64, points geometry.Path, opts Options) *VerticalSortSolver {
	return &VerticalSortSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *VerticalSortSolver) Name() string { return VerticalSort }

// ComputePath implements Solver. Equal y keeps input order.
func (s *VerticalSortSolver) ComputePath(_ context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	return sortedBy(s.points, func(p geometry.Point) float64 { return p.Y }), nil
}

// OriginSortSolver orders points by ascending squared distance from (0, 0).
type OriginSortSolver struct{ instance }

// NewOriginSort returns an OriginSortSolver over a copy of points.
func NewOriginSort(width, height float64, points geometry.Path, opts Options) *OriginSortSolver {
	return &OriginSortSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *OriginSortSolver) Name() string { return OriginSort }

// ComputePath implements Solver.
func (s *OriginSortSolver) ComputePath(_ context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	return sortedBy(s.points, geometry.SquaredNorm), nil
}

// sortedBy returns a stable-sorted copy of p ordered by key.
func sortedBy(p geometry.Path, key func(geometry.Point) float64) geometry.Path {
	out := geometry.Clone(p)
	slices.SortStableFunc(out, func(a, b geometry.Point) int {
		return cmp.Compare(key(a), key(b))
	})

	return out
}
