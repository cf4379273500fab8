// SPDX-License-Identifier: MIT
// Package experiment - analysis and text report.
//
// Layout of WriteReport:
//
//	n   Measured (s)  Theoretical (s)  Overhead  % Error  Regime
//	2   1.2e-06       7.1e-07          1.70x     +70.0%   suboptimal
//	...
//	avg                                1.06x     24.3%
//
//	Final analysis: c, measured slope vs log2(7), mean overhead,
//	predicted time at PredictSize, and a warning when the mean overhead
//	exceeds the warning level.
package experiment

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PredictSize is the extrapolation target printed in the final analysis.
const PredictSize = 1024

const opAnalyze = "Analyze"

// Analysis is a fit plus the regime of every point and the levels used.
type Analysis struct {
	Fit          FitResult
	Regimes      []Regime
	Threshold    float64
	WarningLevel float64
}

// HighOverhead reports whether the mean overhead exceeds the warning level.
func (a Analysis) HighOverhead() bool { return a.Fit.MeanOverhead > a.WarningLevel }

// Analyze fits samples and classifies every size.
//
// Options used: WithOverheadThreshold, WithWarningLevel.
// Errors: everything Fit returns, wrapped with "Analyze".
func Analyze(samples []Sample, opts ...Option) (Analysis, error) {
	o := gatherOptions(opts...)
	fit, err := Fit(samples)
	if err != nil {
		return Analysis{}, experimentErrorf(opAnalyze, err)
	}

	return Analysis{
		Fit:          fit,
		Regimes:      Classify(fit.Overheads(), o.threshold),
		Threshold:    o.threshold,
		WarningLevel: o.warningLevel,
	}, nil
}

// WriteReport renders a as an aligned text table followed by the final analysis.
// Errors: the first write or flush error of w.
func WriteReport(w io.Writer, a Analysis) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "n\tMeasured (s)\tTheoretical (s)\tOverhead\t% Error\tRegime")
	for i, p := range a.Fit.Points {
		regime := RegimeUnknown
		if i < len(a.Regimes) {
			regime = a.Regimes[i]
		}
		fmt.Fprintf(tw, "%d\t%.3e\t%.3e\t%.2fx\t%+.1f%%\t%s\n",
			p.Size, p.Measured, p.Theoretical, p.Overhead, p.ErrorPct, regime)
	}
	fmt.Fprintf(tw, "avg\t\t\t%.2fx\t%.1f%%\t\n", a.Fit.MeanOverhead, a.Fit.MeanAbsErrorPct)
	if err := tw.Flush(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	ew.printf("\nFinal analysis:\n")
	ew.printf("  c = %.4e s\n", a.Fit.C)
	ew.printf("  measured slope = %.3f (model %.3f)\n", a.Fit.Slope, a.Fit.Exponent)
	ew.printf("  mean overhead = %.2fx (mean |error| %.1f%%)\n", a.Fit.MeanOverhead, a.Fit.MeanAbsErrorPct)
	ew.printf("  predicted time n=%d: %.4f s\n", PredictSize, a.Fit.Predict(PredictSize))
	if a.HighOverhead() {
		ew.printf("\nWARNING: mean overhead %.2fx exceeds %.2fx.\n", a.Fit.MeanOverhead, a.WarningLevel)
		ew.printf("  Recursing down to 1x1 dominates the cost at these sizes; a base-case\n")
		ew.printf("  threshold that switches to the conventional product would recover it.\n")
	}

	return ew.err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
