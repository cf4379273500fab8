// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/experiment"
)

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fit the cost model to a saved timing log and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := g.analysisOptions()
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if in != "" && in != "-" {
				fh, err := os.Open(in)
				if err != nil {
					return err
				}
				defer fh.Close()
				r = fh
			}

			samples, err := experiment.ParseTimings(r)
			if err != nil {
				return err
			}
			a, err := experiment.Analyze(samples, opts...)
			if err != nil {
				return err
			}

			return experiment.WriteReport(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "timing log to read ('-' for stdin)")

	return cmd
}
