package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/tourkit/geometry"
	"github.com/katalvlaran/tourkit/metrics"
	"github.com/katalvlaran/tourkit/render"
	"github.com/katalvlaran/tourkit/tsp"
)

// ErrInvalidPath is returned when a solver's output is not a permutation of
// its input.
var ErrInvalidPath = errors.New("bench: solver returned an invalid path")

// Result is the outcome of one solver run on one set.
type Result struct {
	RunID    uuid.UUID
	Set      string
	Solver   string
	Path     geometry.Path
	Distance float64
	Elapsed  time.Duration
}

// Runner executes solver runs. It is safe for sequential use.
type Runner struct {
	cfg     Config
	timeout time.Duration
	logger  *log.Logger
}

// NewRunner validates cfg and returns a Runner that logs to logger
// (nil discards).
func NewRunner(cfg Config, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, _ := cfg.timeout()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{cfg: cfg, timeout: timeout, logger: logger}, nil
}

// Run times solverName on set.
//
// Steps:
//  1. Build the solver from the Config's options and the Runner's logger.
//  2. Time ComputePath under the configured timeout.
//  3. Check the path is a permutation of set.Points.
//  4. Record metrics, log the outcome, render to RenderDir if configured.
//
// A failed run is still counted in metrics and logged at error level.
func (r *Runner) Run(ctx context.Context, set TestSet, solverName string) (Result, error) {
	res := Result{RunID: uuid.New(), Set: set.Name, Solver: solverName}
	logger := r.logger.With("run", res.RunID.String(), "set", set.Name, "solver", solverName)

	opts := r.cfg.SolverOptions()
	opts.Logger = logger
	solver, err := tsp.New(solverName, set.Width, set.Height, set.Points, opts)
	if err != nil {
		return res, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	path, err := solver.ComputePath(ctx)
	res.Elapsed = time.Since(start)
	if err == nil && !geometry.IsPermutation(set.Points, path) {
		err = fmt.Errorf("%w: %s on %s", ErrInvalidPath, solverName, set.Name)
	}
	if err != nil {
		metrics.ObserveRun(solverName, set.Name, res.Elapsed.Seconds(), 0, err)
		logger.Error("run failed", "elapsed", res.Elapsed, "err", err)

		return res, err
	}

	res.Path = path
	res.Distance = geometry.TotalDistance(path)
	metrics.ObserveRun(solverName, set.Name, res.Elapsed.Seconds(), res.Distance, nil)
	logger.Info("run finished",
		"points", len(path),
		"distance", res.Distance,
		"elapsed", res.Elapsed.Round(time.Microsecond),
	)

	if r.cfg.RenderDir != "" {
		if err = r.render(ctx, set, res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// RunAll runs every configured solver on every configured set, in config
// order. Failed runs are skipped in the results and their errors joined; a
// cancelled ctx stops the loop.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	var (
		results []Result
		errs    []error
	)
	for _, name := range r.cfg.Sets {
		set, err := Generate(name, r.cfg.Seed)
		if err != nil {
			return results, err
		}
		r.logger.Debug("generated set", "set", name, "points", len(set.Points))

		for _, solverName := range r.cfg.Solvers {
			if err = ctx.Err(); err != nil {
				return results, err
			}
			res, err := r.Run(ctx, set, solverName)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			results = append(results, res)
		}
	}

	return results, errors.Join(errs...)
}

// render writes <set>_<solver>.svg into RenderDir.
func (r *Runner) render(ctx context.Context, set TestSet, res Result) error {
	if err := os.MkdirAll(r.cfg.RenderDir, 0o755); err != nil {
		return fmt.Errorf("create render dir: %w", err)
	}

	dot := render.ToDOT(res.Path, render.Options{
		Title:  fmt.Sprintf("%s / %s: %.2f", res.Set, res.Solver, res.Distance),
		Scale:  renderScale(set),
		Closed: false,
	})
	svg, err := render.RenderSVG(ctx, dot)
	if err != nil {
		return fmt.Errorf("render %s/%s: %w", res.Set, res.Solver, err)
	}

	out := filepath.Join(r.cfg.RenderDir, res.Set+"_"+res.Solver+".svg")
	if err = os.WriteFile(out, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	r.logger.Debug("rendered", "file", out)

	return nil
}

// renderScale fits the larger side of the set's box into 600 points.
func renderScale(set TestSet) float64 {
	side := max(set.Width, set.Height)
	if side <= 0 {
		return render.DefaultScale
	}

	return 600 / side
}
