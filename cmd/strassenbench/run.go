// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/experiment"
)

type runFlags struct {
	sizes      []int
	repeats    int
	warmup     int
	seed       int64
	kernels    []string
	timingsOut string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the kernels over a size grid and print timings plus the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, g, f)
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&f.sizes, "sizes", experiment.DefaultSizes(), "matrix sizes n (n×n operands)")
	fs.IntVar(&f.repeats, "repeats", experiment.DefaultRepeats, "timed calls averaged per size")
	fs.IntVar(&f.warmup, "warmup", experiment.DefaultWarmup, "untimed calls before timing each size")
	fs.Int64Var(&f.seed, "seed", experiment.DefaultSeed, "input seed (0 = fixed default)")
	fs.StringSliceVar(&f.kernels, "kernel", []string{string(experiment.KernelStrassen)}, "kernels to time: strassen, naive")
	fs.StringVar(&f.timingsOut, "timings-out", "", "also write the timing log to this file")

	return cmd
}

func runRun(cmd *cobra.Command, g *globalFlags, f *runFlags) error {
	opts, err := g.analysisOptions()
	if err != nil {
		return err
	}
	kernels := make([]experiment.Kernel, 0, len(f.kernels))
	for _, name := range f.kernels {
		k, err := experiment.ParseKernel(name)
		if err != nil {
			return err
		}
		kernels = append(kernels, k)
	}
	opts = append(opts,
		experiment.WithSizes(f.sizes...),
		experiment.WithRepeats(f.repeats),
		experiment.WithWarmup(f.warmup),
		experiment.WithSeed(f.seed),
		experiment.WithKernels(kernels...),
	)

	rep, err := experiment.Run(cmd.Context(), opts...)
	if err != nil {
		return err
	}
	g.logger().Info("environment", "env", rep.Environment.String())

	out := cmd.OutOrStdout()
	strassen := rep.ForKernel(experiment.KernelStrassen)
	if err = experiment.WriteTimings(out, strassen); err != nil {
		return err
	}
	if f.timingsOut != "" {
		if err = writeTimingsFile(f.timingsOut, strassen); err != nil {
			return err
		}
	}

	if len(strassen) > 0 {
		a, err := experiment.Analyze(strassen, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err = experiment.WriteReport(out, a); err != nil {
			return err
		}
	}
	if naive := rep.ForKernel(experiment.KernelNaive); len(naive) > 0 {
		fmt.Fprintln(out)
		return writeComparison(out, strassen, naive)
	}

	return nil
}

func writeTimingsFile(path string, samples []experiment.Sample) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return experiment.WriteTimings(fh, samples)
}

// writeComparison prints naive and Strassen means side by side, by size.
func writeComparison(w io.Writer, strassen, naive []experiment.Sample) error {
	bySize := make(map[int]experiment.Sample, len(strassen))
	for _, s := range strassen {
		bySize[s.Size] = s
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "n\tnaive (s)\tstrassen (s)\tstrassen/naive")
	for _, nv := range naive {
		st, ok := bySize[nv.Size]
		if !ok {
			fmt.Fprintf(tw, "%d\t%.3e\t-\t-\n", nv.Size, nv.Seconds())
			continue
		}
		ratio := st.Seconds() / nv.Seconds()
		fmt.Fprintf(tw, "%d\t%.3e\t%.3e\t%.2fx\n", nv.Size, nv.Seconds(), st.Seconds(), ratio)
	}

	return tw.Flush()
}
