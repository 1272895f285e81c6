package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourkit/tsp"
)

// ErrConfigFormat is returned by LoadConfig for an unsupported file extension.
var ErrConfigFormat = errors.New("bench: unsupported config format")

// Config selects what a benchmark run does.
//
// Example TOML:
//
//	sets = ["RandomUniform1", "Circle1"]
//	solvers = ["NearestNeighbor", "Christofides"]
//	seed = 0
//	samples = 1000
//	workers = 4
//	timeout = "30s"
//	render_dir = "figures"
type Config struct {
	// Sets lists test set names; see SetNames.
	Sets []string `toml:"sets" yaml:"sets"`

	// Solvers lists solver names; see tsp.Names.
	Solvers []string `toml:"solvers" yaml:"solvers"`

	// Seed drives both set generation and the solvers.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Samples and Workers feed tsp.Options. Zero keeps the tsp defaults.
	Samples int `toml:"samples" yaml:"samples"`
	Workers int `toml:"workers" yaml:"workers"`

	// Timeout bounds a single solver run, as a time.ParseDuration string.
	// Empty means no limit.
	Timeout string `toml:"timeout" yaml:"timeout"`

	// RenderDir receives one SVG per run when non-empty.
	RenderDir string `toml:"render_dir" yaml:"render_dir"`
}

// DefaultConfig runs the polynomial solvers on the two smallest interesting
// sets.
func DefaultConfig() Config {
	return Config{
		Sets: []string{RandomUniform1, Circle1},
		Solvers: []string{
			tsp.HorizontalSort,
			tsp.VerticalSort,
			tsp.OriginSort,
			tsp.RandomSampler,
			tsp.NearestNeighbor,
			tsp.NearestNeighborParallel,
		},
		Seed:    0,
		Samples: tsp.DefaultSamples,
		Workers: tsp.DefaultWorkers,
	}
}

// LoadConfig reads a Config from path. The format follows the extension:
// .toml, or .yaml/.yml. Fields absent from the file keep DefaultConfig
// values. The result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every set and solver name and the timeout.
func (c Config) Validate() error {
	var errs []error
	for _, name := range c.Sets {
		if !slices.Contains(setNames, name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSet, name))
		}
	}
	solvers := tsp.Names()
	for _, name := range c.Solvers {
		if !slices.Contains(solvers, name) {
			errs = append(errs, fmt.Errorf("%w: %q", tsp.ErrUnknownSolver, name))
		}
	}
	if _, err := c.timeout(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// timeout parses Timeout; empty means zero (no limit).
func (c Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("bench: timeout: %w", err)
	}

	return d, nil
}

// SolverOptions converts c into tsp.Options (without a logger).
func (c Config) SolverOptions() tsp.Options {
	return tsp.Options{
		Seed:    c.Seed,
		Samples: c.Samples,
		Workers: c.Workers,
	}
}
