package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourkit/bench"
)

// runOpts holds the run command flags. Set flags override the config file.
type runOpts struct {
	config    string
	sets      []string
	solvers   []string
	seed      int64
	samples   int
	workers   int
	timeout   string
	renderDir string
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run solvers over point sets and print a report",
		Long: `Run every selected solver on every selected point set.

Without --config the default selection runs the polynomial solvers on
RandomUniform1 and Circle1. Flags override values from the config file.`,
		Example: `  tspbench run --sets RandomUniform2 --solvers BranchAndBound,Held-Karp
  tspbench run --config bench.toml --render-dir figures`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			runner, err := bench.NewRunner(cfg, logger)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			results, runErr := runner.RunAll(ctx)
			p.done("Finished " + pluralize(len(results), "run"))

			if err := bench.WriteReport(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			return runErr
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "config file (.toml, .yaml or .yml)")
	f.StringSliceVar(&opts.sets, "sets", nil, "point sets to run (comma-separated)")
	f.StringSliceVar(&opts.solvers, "solvers", nil, "solvers to run (comma-separated)")
	f.Int64Var(&opts.seed, "seed", 0, "seed for point sets and solvers")
	f.IntVar(&opts.samples, "samples", 0, "shuffles tried by RandomSampler")
	f.IntVar(&opts.workers, "workers", 0, "goroutines for NearestNeighborParallel")
	f.StringVar(&opts.timeout, "timeout", "", "limit per solver run, e.g. 30s")
	f.StringVar(&opts.renderDir, "render-dir", "", "write one SVG per run into this directory")

	return cmd
}

// resolve loads the config file (or the defaults) and applies every flag the
// user set.
func (o runOpts) resolve(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = bench.LoadConfig(o.config); err != nil {
			return bench.Config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("sets") {
		cfg.Sets = o.sets
	}
	if f.Changed("solvers") {
		cfg.Solvers = o.solvers
	}
	if f.Changed("seed") {
		cfg.Seed = o.seed
	}
	if f.Changed("samples") {
		cfg.Samples = o.samples
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if f.Changed("render-dir") {
		cfg.RenderDir = o.renderDir
	}

	return cfg, cfg.Validate()
}
