// Package cli implements the tspbench command-line interface.
//
// Commands:
//   - run: solve the configured point sets with the configured solvers and
//     print a report
//   - sets: list the named point sets
//   - solvers: list the solver names
//
// All commands accept --verbose (-v) for debug-level logging. The logger is
// carried through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the executable name.
const appName = "tspbench"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI that logs to logw at level and writes command output to
// out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(logw, level), out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Its PersistentPreRun attaches the logger to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tspbench benchmarks travelling salesman solvers",
		Long:         `tspbench runs planar TSP solvers over named point sets, validates and times each run, and prints a distance report.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetOut(c.out)

	root.AddCommand(c.runCommand())
	root.AddCommand(c.setsCommand())
	root.AddCommand(c.solversCommand())

	return root
}
