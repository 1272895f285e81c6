package tsp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tourkit/geometry"
)

// constructor builds a Solver; every New* function has this shape.
type constructor func(width, height float64, points geometry.Path, opts Options) Solver

// names lists the registry in a stable presentation order.
var names = []string{
	HorizontalSort,
	VerticalSort,
	OriginSort,
	RandomSampler,
	BruteForce,
	BranchAndBound,
	NearestNeighbor,
	NearestNeighborParallel,
	Christofides,
	HeldKarp,
}

var registry = map[string]constructor{
	HorizontalSort: func(w, h float64, p geometry.Path, o Options) Solver { return NewHorizontalSort(w, h, p, o) },
	VerticalSort:   func(w, h float64, p geometry.Path, o Options) Solver { return NewVerticalSort(w, h, p, o) },
	OriginSort:     func(w, h float64, p geometry.Path, o Options) Solver { return NewOriginSort(w, h, p, o) },
	RandomSampler:  func(w, h float64, p geometry.Path, o Options) Solver { return NewRandomSampler(w, h, p, o) },
	BruteForce:     func(w, h float64, p geometry.Path, o Options) Solver { return NewBruteForce(w, h, p, o) },
	BranchAndBound: func(w, h float64, p geometry.Path, o Options) Solver { return NewBranchAndBound(w, h, p, o) },
	NearestNeighbor: func(w, h float64, p geometry.Path, o Options) Solver {
		return NewNearestNeighbor(w, h, p, o)
	},
	NearestNeighborParallel: func(w, h float64, p geometry.Path, o Options) Solver {
		return NewNearestNeighborParallel(w, h, p, o)
	},
	Christofides: func(w, h float64, p geometry.Path, o Options) Solver { return NewChristofides(w, h, p, o) },
	HeldKarp:     func(w, h float64, p geometry.Path, o Options) Solver { return NewHeldKarp(w, h, p, o) },
}

// Names returns every solver name accepted by New, in presentation order.
func Names() []string {
	return slices.Clone(names)
}

// New builds the solver registered under name.
// Errors: ErrUnknownSolver.
func New(name string, width, height float64, points geometry.Path, opts Options) (Solver, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}

	return build(width, height, points, opts), nil
}
