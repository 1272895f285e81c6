package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourkit/geometry"
	"github.com/katalvlaran/tourkit/graph"
)

// ChristofidesSolver builds a path with the Christofides construction:
//
//  1. Complete graph of pairwise distances.
//  2. Minimum spanning tree (Prim, random start drawn from Options.Seed).
//  3. Exact minimum-cost perfect matching on the odd-degree tree vertices.
//  4. Multigraph union of tree and matching: every degree is now even.
//  5. Euler tour of the union (Fleury).
//  6. Shortcut: keep the first visit of every vertex.
//
// Step 3 enumerates pairings, (k-1)!! for k odd vertices, so the solver is
// only practical while the tree has few odd vertices.
type ChristofidesSolver struct{ instance }

// NewChristofides returns a ChristofidesSolver over a copy of points.
func NewChristofides(width, height float64, points geometry.Path, opts Options) *ChristofidesSolver {
	return &ChristofidesSolver{newInstance(width, height, points, opts)}
}

// Name implements Solver.
func (s *ChristofidesSolver) Name() string { return Christofides }

// ComputePath implements Solver. ctx is checked between stages.
func (s *ChristofidesSolver) ComputePath(ctx context.Context) (geometry.Path, error) {
	s.begin(s.Name())

	n := len(s.points)
	if n <= 2 {
		return geometry.Clone(s.points), nil
	}

	g, err := completeGraph(s.points)
	if err != nil {
		return nil, err
	}
	mst, err := g.PrimsMST(rngFromSeed(s.opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("tsp: christofides spanning tree: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	odd := mst.OddVertices()
	s.opts.Logger.Debug("spanning tree built", "weight", mst.TotalWeight(), "odd", len(odd))
	matching, err := g.MinCostPerfectMatchingOn(odd)
	if err != nil {
		return nil, fmt.Errorf("tsp: christofides matching: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	union := graph.NewMultiGraphFrom(mst)
	for _, e := range matching.Edges() {
		if err = union.AddUndirectedEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("tsp: christofides union: %w", err)
		}
	}
	tour, err := union.EulerTour()
	if err != nil {
		return nil, fmt.Errorf("tsp: christofides euler tour: %w", err)
	}

	order := graph.ShortcutEulerTour(tour)
	if len(order) != n {
		return nil, fmt.Errorf("%w: shortcut visits %d of %d", ErrIncompleteTour, len(order), n)
	}

	return s.pick(order), nil
}

// completeGraph returns the complete undirected graph over points weighted
// by Euclidean distance.
//
// Complexity: O(n²).
func completeGraph(points geometry.Path) (*graph.Graph, error) {
	var (
		n    = len(points)
		dm   = geometry.DistanceMatrix(points)
		g    = graph.NewGraph(n)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := g.AddUndirectedEdge(i, j, dm.At(i, j)); err != nil {
				return nil, fmt.Errorf("tsp: distance %d-%d: %w", i, j, err)
			}
		}
	}

	return g, nil
}
