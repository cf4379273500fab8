// SPDX-License-Identifier: MIT

// Command strassenbench measures the pure Strassen multiplier against its
// Θ(n^log2(7)) cost model.
//
// Usage:
//
//	strassenbench run     [--sizes 2,4,...] [--repeats 10] [--kernel strassen,naive] [--timings-out file]
//	strassenbench analyze [--in file]        (timing lines from a file or stdin)
//	strassenbench verify  [--sizes ...] [--tol 1e-9]
//
// run prints the timing log, then the report; analyze re-runs only the
// analysis on a saved log; verify checks Strassen against two references.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/strassen/experiment"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose   bool
	threshold float64
	warning   float64
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "strassenbench",
		Short:         "Measure pure Strassen multiplication against its n^log2(7) model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root.PersistentFlags(), g)

	root.AddCommand(newRunCmd(g), newAnalyzeCmd(g), newVerifyCmd(g))

	return root
}

func addGlobalFlags(fs *pflag.FlagSet, g *globalFlags) {
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "log every repeat (debug level)")
	fs.Float64Var(&g.threshold, "threshold", experiment.DefaultOverheadThreshold, "overhead at or below which a size is optimal")
	fs.Float64Var(&g.warning, "warn-at", experiment.DefaultWarningLevel, "mean overhead above which the report warns")
}

// logger writes progress to stderr so stdout stays a clean report.
func (g *globalFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// analysisOptions validates the level flags here, so bad input is an error
// rather than a panic inside experiment.
func (g *globalFlags) analysisOptions() ([]experiment.Option, error) {
	if !(g.threshold > 0) || math.IsInf(g.threshold, 0) {
		return nil, fmt.Errorf("--threshold must be > 0, got %g", g.threshold)
	}
	if !(g.warning > 0) || math.IsInf(g.warning, 0) {
		return nil, fmt.Errorf("--warn-at must be > 0, got %g", g.warning)
	}

	return []experiment.Option{
		experiment.WithOverheadThreshold(g.threshold),
		experiment.WithWarningLevel(g.warning),
		experiment.WithLogger(g.logger()),
	}, nil
}
