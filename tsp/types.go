package tsp

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tourkit/geometry"
)

// Sentinel errors.
var (
	// ErrUnknownSolver is returned by New for a name not listed in Names.
	ErrUnknownSolver = errors.New("tsp: unknown solver")

	// ErrTooManyPoints is returned by solvers whose memory grows
	// exponentially with the input and that refuse oversized inputs.
	ErrTooManyPoints = errors.New("tsp: too many points")

	// ErrIncompleteTour indicates an internal stage produced an ordering that
	// does not cover every point.
	ErrIncompleteTour = errors.New("tsp: tour does not cover every point")
)

// Solver names accepted by New.
const (
	HorizontalSort          = "HorizontalSort"
	VerticalSort            = "VerticalSort"
	OriginSort              = "OriginSort"
	RandomSampler           = "RandomSampler"
	BruteForce              = "BruteForce"
	BranchAndBound          = "BranchAndBound"
	NearestNeighbor         = "NearestNeighbor"
	NearestNeighborParallel = "NearestNeighborParallel"
	Christofides            = "Christofides"
	HeldKarp                = "Held-Karp"
)

// Defaults used by DefaultOptions and for zero-valued fields.
const (
	DefaultSamples = 1000
	DefaultWorkers = 4
)

// Solver computes a visitation order for a fixed point set.
type Solver interface {
	// Name returns the registry name of the strategy.
	Name() string

	// ComputePath returns a new Path holding a permutation of the input
	// points. It returns ctx.Err() if ctx ends before the search does.
	ComputePath(ctx context.Context) (geometry.Path, error)
}

// Options tunes solver behaviour. The zero value is usable: zero Samples and
// Workers fall back to the defaults, a nil Logger discards output.
type Options struct {
	// Seed drives every random choice. 0 selects a fixed default stream.
	Seed int64

	// Samples is the number of shuffles tried by RandomSampler.
	Samples int

	// Workers bounds the goroutines of NearestNeighborParallel.
	Workers int

	// Logger receives debug-level progress.
	Logger *log.Logger
}

// DefaultOptions returns Options with Samples and Workers at their defaults.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Samples: DefaultSamples,
		Workers: DefaultWorkers,
	}
}

// normalized fills zero or negative fields with defaults.
func (o Options) normalized() Options {
	if o.Samples <= 0 {
		o.Samples = DefaultSamples
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}

	return o
}

// instance is the state shared by every solver: the bounding box, a private
// copy of the points and normalized options.
type instance struct {
	width  float64
	height float64
	points geometry.Path
	opts   Options
}

func newInstance(width, height float64, points geometry.Path, opts Options) instance {
	return instance{
		width:  width,
		height: height,
		points: geometry.Clone(points),
		opts:   opts.normalized(),
	}
}

// begin logs the start of a ComputePath call.
func (in *instance) begin(name string) {
	in.opts.Logger.Debug("compute path",
		"solver", name,
		"points", len(in.points),
		"width", in.width,
		"height", in.height,
	)
}

// pick returns the points of in at the given indices, in that order.
func (in *instance) pick(order []int) geometry.Path {
	out := make(geometry.Path, len(order))
	for i, idx := range order {
		out[i] = in.points[idx]
	}

	return out
}

// canceller checks ctx once every 4096 calls to tick.
type canceller struct {
	ctx   context.Context
	steps int
}

func (c *canceller) tick() error {
	c.steps++
	if c.steps&4095 != 0 {
		return nil
	}

	return c.ctx.Err()
}
