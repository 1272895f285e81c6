package bench

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/tourkit/geometry"
)

// ErrUnknownSet is returned by Generate for a name not listed in SetNames.
var ErrUnknownSet = errors.New("bench: unknown test set")

// TestSet is a named point set inside a width×height box.
type TestSet struct {
	Name   string
	Points geometry.Path
	Width  float64
	Height float64
}

// Set names accepted by Generate.
const (
	RandomUniform1     = "RandomUniform1"
	RandomUniform2     = "RandomUniform2"
	RandomUniform3     = "RandomUniform3"
	RandomUniform4     = "RandomUniform4"
	RandomUniform5     = "RandomUniform5"
	Circle1            = "Circle1"
	TwoDisjointCities1 = "TwoDisjointCities1"
)

// generator builds a set from a seeded stream.
type generator func(rng *rand.Rand) TestSet

var setNames = []string{
	RandomUniform1,
	RandomUniform2,
	RandomUniform3,
	RandomUniform4,
	RandomUniform5,
	Circle1,
	TwoDisjointCities1,
}

var generators = map[string]generator{
	// Small enough for BruteForce.
	RandomUniform1: randomUniform(RandomUniform1, 20, 10),
	// Upper end for BranchAndBound.
	RandomUniform2:     randomUniform(RandomUniform2, 50, 12),
	RandomUniform3:     randomUniform(RandomUniform3, 100, 35),
	RandomUniform4:     randomUniform(RandomUniform4, 1000, 300),
	RandomUniform5:     randomUniform(RandomUniform5, 10000, 1000),
	Circle1:            circle(Circle1, 100, 100),
	TwoDisjointCities1: twoCities(TwoDisjointCities1, 1000, 300),
}

// SetNames returns every set name accepted by Generate.
func SetNames() []string {
	return slices.Clone(setNames)
}

// Generate builds the named set from seed.
// Errors: ErrUnknownSet.
func Generate(name string, seed int64) (TestSet, error) {
	gen, ok := generators[name]
	if !ok {
		return TestSet{}, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}

	return gen(rand.New(rand.NewSource(seed))), nil
}

// randomUniform draws samples integer points in [0,size)² and keeps the
// first occurrence of each, so the set may hold fewer than samples points.
func randomUniform(name string, size, samples int) generator {
	return func(rng *rand.Rand) TestSet {
		var (
			seen   = make(map[geometry.Point]struct{}, samples)
			points = make(geometry.Path, 0, samples)
		)
		for i := 0; i < samples; i++ {
			p := geometry.Point{X: float64(rng.Intn(size)), Y: float64(rng.Intn(size))}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			points = append(points, p)
		}

		return TestSet{Name: name, Points: points, Width: float64(size), Height: float64(size)}
	}
}

// circle places samples points at uniform random angles on the circle of
// radius size/4 centred in a size×size box.
func circle(name string, size, samples int) generator {
	return func(rng *rand.Rand) TestSet {
		var (
			c      = float64(size / 2)
			r      = float64(size / 4)
			points = make(geometry.Path, samples)
		)
		for i := range points {
			th := rng.Float64() * 2 * math.Pi
			points[i] = geometry.Point{X: c + math.Cos(th)*r, Y: c + math.Sin(th)*r}
		}

		return TestSet{Name: name, Points: points, Width: float64(size), Height: float64(size)}
	}
}

// rect is an axis-aligned box given by two opposite corners.
type rect struct{ x0, y0, x1, y1 float64 }

func (r rect) sample(rng *rand.Rand) geometry.Point {
	return geometry.Point{
		X: r.x0 + rng.Float64()*(r.x1-r.x0),
		Y: r.y0 + rng.Float64()*(r.y1-r.y0),
	}
}

// twoCities alternates uniform points between two separated rectangles.
func twoCities(name string, size, samples int) generator {
	cities := [2]rect{
		{x0: 10, y0: 10, x1: 200, y1: 800},
		{x0: 500, y0: 10, x1: 700, y1: 800},
	}

	return func(rng *rand.Rand) TestSet {
		points := make(geometry.Path, 0, samples)
		for i := 0; i < samples/2; i++ {
			points = append(points, cities[0].sample(rng), cities[1].sample(rng))
		}

		return TestSet{Name: name, Points: points, Width: float64(size), Height: float64(size)}
	}
}
