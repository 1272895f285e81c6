package tsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/geometry"
	"github.com/katalvlaran/tourkit/tsp"
)

// eps is the tolerance for comparing path lengths.
const eps = 1e-9

// unitSquare returns the corners of the unit square in boundary order.
func unitSquare() geometry.Path {
	return geometry.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// randomPoints draws n distinct integer points in [0,size)² from seed.
func randomPoints(t testing.TB, seed int64, n int, size int) geometry.Path {
	t.Helper()
	require.LessOrEqual(t, n, size*size, "not enough distinct points")

	var (
		rng  = rand.New(rand.NewSource(seed))
		seen = make(map[geometry.Point]struct{}, n)
		out  = make(geometry.Path, 0, n)
	)
	for len(out) < n {
		p := geometry.Point{X: float64(rng.Intn(size)), Y: float64(rng.Intn(size))}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// circlePoints places n points evenly on a circle of radius r, which makes
// many nearest-neighbor candidates equidistant.
func circlePoints(n int, r float64) geometry.Path {
	out := make(geometry.Path, n)
	for i := range out {
		th := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geometry.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return out
}

// solve builds the named solver and runs it.
func solve(t testing.TB, name string, points geometry.Path, opts tsp.Options) geometry.Path {
	t.Helper()
	s, err := tsp.New(name, 100, 100, points, opts)
	require.NoError(t, err)
	path, err := s.ComputePath(context.Background())
	require.NoError(t, err)

	return path
}
