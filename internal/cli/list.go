package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourkit/bench"
	"github.com/katalvlaran/tourkit/tsp"
)

func (c *CLI) setsCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the named point sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range bench.SetNames() {
				set, err := bench.Generate(name, seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s  %s\n",
					StyleValue.Width(20).Render(name),
					StyleNumber.Render(fmt.Sprintf("%5d points", len(set.Points))),
					StyleDim.Render(fmt.Sprintf("%gx%g", set.Width, set.Height)),
				)
			}

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed used to generate the sets")

	return cmd
}

func (c *CLI) solversCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solvers",
		Short: "List the solver names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range tsp.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), StyleValue.Render(name))
			}

			return nil
		},
	}
}
