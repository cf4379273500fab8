// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/experiment"
)

func newVerifyCmd(g *globalFlags) *cobra.Command {
	var (
		sizes []int
		seed  int64
		tol   float64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check Strassen against the conventional product and gonum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(tol >= 0) || math.IsInf(tol, 0) {
				return fmt.Errorf("--tol must be finite and ≥ 0, got %g", tol)
			}
			checks, err := experiment.Verify(cmd.Context(),
				experiment.WithSizes(sizes...),
				experiment.WithSeed(seed),
				experiment.WithTolerance(tol),
				experiment.WithLogger(g.logger()),
			)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "shape\tmax |Δ| naive\tmax |Δ| gonum")
			for _, c := range checks {
				fmt.Fprintf(tw, "%s\t%.3e\t%.3e\n", c.Shape(), c.VsNaive, c.VsGonum)
			}
			fmt.Fprintf(tw, "ok: %d products within %g\n", len(checks), tol)

			return tw.Flush()
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&sizes, "sizes", []int{1, 2, 3, 5, 8, 17, 32, 64}, "sizes n to verify")
	fs.Int64Var(&seed, "seed", experiment.DefaultSeed, "input seed (0 = fixed default)")
	fs.Float64Var(&tol, "tol", experiment.DefaultVerifyTolerance, "relative and absolute tolerance")

	return cmd
}
