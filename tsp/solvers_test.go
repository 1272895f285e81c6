package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/geometry"
	"github.com/katalvlaran/tourkit/graph"
	"github.com/katalvlaran/tourkit/tsp"
)

func TestRegistry(t *testing.T) {
	names := tsp.Names()
	require.Len(t, names, 10)
	for _, name := range names {
		s, err := tsp.New(name, 10, 10, nil, tsp.DefaultOptions())
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}

	_, err := tsp.New("Genetic", 10, 10, nil, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrUnknownSolver)

	names[0] = "mutated"
	assert.Equal(t, tsp.HorizontalSort, tsp.Names()[0], "Names returns a copy")
}

// TestSolvers_Permutation checks every solver on sizes that hit the n<=2
// shortcuts as well as a general case, with the zero Options.
func TestSolvers_Permutation(t *testing.T) {
	for _, name := range tsp.Names() {
		for _, n := range []int{0, 1, 2, 3, 7} {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				points := randomPoints(t, int64(n)+1, n, 20)
				before := geometry.Clone(points)

				path := solve(t, name, points, tsp.Options{})
				require.Len(t, path, n)
				assert.True(t, geometry.IsPermutation(points, path))
				assert.Equal(t, before, points, "input must not be reordered")
			})
		}
	}
}

func TestSortSolvers(t *testing.T) {
	points := geometry.Path{{X: 3, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 1, Y: 0}}

	assert.Equal(t,
		geometry.Path{{X: 1, Y: 2}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}},
		solve(t, tsp.HorizontalSort, points, tsp.DefaultOptions()), "stable on equal x")
	assert.Equal(t,
		geometry.Path{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 2}},
		solve(t, tsp.VerticalSort, points, tsp.DefaultOptions()), "stable on equal y")
	assert.Equal(t,
		geometry.Path{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}},
		solve(t, tsp.OriginSort, points, tsp.DefaultOptions()))
}

func TestExactSolvers_UnitSquare(t *testing.T) {
	for _, name := range []string{tsp.BruteForce, tsp.BranchAndBound, tsp.HeldKarp} {
		path := solve(t, name, unitSquare(), tsp.DefaultOptions())
		assert.InDelta(t, 3.0, geometry.TotalDistance(path), eps, name)
	}
}

// TestExactSolvers_Agree compares the three exact strategies on every size up
// to eight points.
func TestExactSolvers_Agree(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for seed := int64(1); seed <= 4; seed++ {
			points := randomPoints(t, seed*100+int64(n), n, 30)

			bf := geometry.TotalDistance(solve(t, tsp.BruteForce, points, tsp.DefaultOptions()))
			bb := geometry.TotalDistance(solve(t, tsp.BranchAndBound, points, tsp.DefaultOptions()))
			hk := geometry.TotalDistance(solve(t, tsp.HeldKarp, points, tsp.DefaultOptions()))

			assert.InDelta(t, bf, bb, eps, "n=%d seed=%d", n, seed)
			assert.InDelta(t, bf, hk, eps, "n=%d seed=%d", n, seed)
		}
	}
}

// TestHeuristics_NeverBeatOptimum: heuristic paths are upper bounds of the
// exact optimum, and Christofides stays within 3x of it (1.5x of the optimal
// tour, which is at most twice the optimal open path).
func TestHeuristics_NeverBeatOptimum(t *testing.T) {
	heuristics := []string{
		tsp.HorizontalSort, tsp.VerticalSort, tsp.OriginSort, tsp.RandomSampler,
		tsp.NearestNeighbor, tsp.NearestNeighborParallel, tsp.Christofides,
	}
	for seed := int64(1); seed <= 5; seed++ {
		points := randomPoints(t, seed, 9, 50)
		opt := geometry.TotalDistance(solve(t, tsp.HeldKarp, points, tsp.DefaultOptions()))

		for _, name := range heuristics {
			got := geometry.TotalDistance(solve(t, name, points, tsp.DefaultOptions()))
			assert.GreaterOrEqual(t, got, opt-eps, "%s seed=%d", name, seed)
			if name == tsp.Christofides {
				assert.LessOrEqual(t, got, 3*opt+eps, "seed=%d", seed)
			}
		}
	}
}

func TestNearestNeighbor_Deterministic(t *testing.T) {
	points := circlePoints(12, 10)
	opts := tsp.Options{Seed: 7}

	first := solve(t, tsp.NearestNeighbor, points, opts)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, solve(t, tsp.NearestNeighbor, points, opts))
	}
}

// TestNearestNeighbor_Line: every start but the ends backtracks, and of the
// two ends the lower start index wins the tie.
func TestNearestNeighbor_Line(t *testing.T) {
	points := geometry.Path{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	path := solve(t, tsp.NearestNeighbor, points, tsp.DefaultOptions())
	assert.Equal(t, geometry.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, path)
}

func TestNearestNeighborParallel_MatchesSerial(t *testing.T) {
	cases := map[string]geometry.Path{
		"random": randomPoints(t, 42, 60, 100),
		"circle": circlePoints(24, 50),
	}
	for name, points := range cases {
		for _, workers := range []int{1, 3, 8, 100} {
			opts := tsp.Options{Seed: 3, Workers: workers}
			serial := solve(t, tsp.NearestNeighbor, points, opts)
			parallel := solve(t, tsp.NearestNeighborParallel, points, opts)
			assert.Equal(t, serial, parallel, "%s workers=%d", name, workers)
		}
	}
}

func TestRandomSampler_MoreSamplesNeverWorse(t *testing.T) {
	points := randomPoints(t, 5, 12, 40)

	one := solve(t, tsp.RandomSampler, points, tsp.Options{Seed: 9, Samples: 1})
	many := solve(t, tsp.RandomSampler, points, tsp.Options{Seed: 9, Samples: 500})
	again := solve(t, tsp.RandomSampler, points, tsp.Options{Seed: 9, Samples: 500})

	assert.LessOrEqual(t, geometry.TotalDistance(many), geometry.TotalDistance(one)+eps)
	assert.Equal(t, many, again)
}

func TestHeldKarp_TooManyPoints(t *testing.T) {
	points := randomPoints(t, 1, tsp.MaxHeldKarpPoints+1, 50)
	s := tsp.NewHeldKarp(50, 50, points, tsp.DefaultOptions())

	_, err := s.ComputePath(context.Background())
	assert.ErrorIs(t, err, tsp.ErrTooManyPoints)
}

// TestSolvers_Cancelled runs each searching solver on an already cancelled
// context; sizes are large enough for the sparse checks to fire.
func TestSolvers_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := map[string]int{
		tsp.RandomSampler:           10,
		tsp.BruteForce:              9,
		tsp.BranchAndBound:          30,
		tsp.NearestNeighbor:         10,
		tsp.NearestNeighborParallel: 10,
		tsp.Christofides:            10,
		tsp.HeldKarp:                13,
	}
	for name, n := range cases {
		s, err := tsp.New(name, 50, 50, randomPoints(t, 1, n, 50), tsp.DefaultOptions())
		require.NoError(t, err)

		_, err = s.ComputePath(ctx)
		assert.ErrorIs(t, err, context.Canceled, name)
	}
}

func TestChristofides_Duplicates(t *testing.T) {
	points := geometry.Path{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 4, Y: 5}, {X: 4, Y: 5}, {X: 0, Y: 3}}
	path := solve(t, tsp.Christofides, points, tsp.DefaultOptions())
	assert.True(t, geometry.IsPermutation(points, path))
}

func TestSolvers_OverflowingDistance(t *testing.T) {
	// Finite coordinates whose pairwise distance overflows to +Inf.
	points := geometry.Path{{X: -1e308, Y: 0}, {X: 1e308, Y: 0}, {X: 0, Y: 1}}

	for _, name := range tsp.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := tsp.New(name, 100, 100, points, tsp.Options{Samples: 10})
			require.NoError(t, err)

			path, err := s.ComputePath(context.Background())
			if name == tsp.Christofides {
				assert.ErrorIs(t, err, graph.ErrBadWeight)
				return
			}
			require.NoError(t, err)
			require.Len(t, path, len(points))
			assert.True(t, geometry.IsPermutation(points, path))
		})
	}
}
