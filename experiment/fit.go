// SPDX-License-Identifier: MIT
// Package experiment - cost-model fit.
//
// Model:
//
//	t(n) = c · n^e,   e = log2(7)
//
// Fit:
//   - log c = mean_i( log t_i − e·log n_i ), the least-squares c for a fixed e.
//   - overhead_i = t_i / (c·n_i^e); % error_i = (overhead_i − 1)·100.
//   - Measured slope: least-squares slope of log2 t on log2 n. With three or
//     more sizes the smallest one is left out, since it is dominated by call
//     overhead rather than by the n^e term.
//
// By construction the geometric mean of the overheads is 1; the arithmetic
// mean reported here is ≥ 1 and grows with the spread between sizes.
package experiment

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StrassenExponent is log2(7), the exponent of the Strassen cost model.
const StrassenExponent = 2.807354922057604

const opFit = "Fit"

// Point is one size of a fitted run.
type Point struct {
	Size        int
	Measured    float64 // seconds
	Theoretical float64 // seconds, c·n^e
	Overhead    float64 // Measured / Theoretical
	ErrorPct    float64 // (Overhead − 1)·100
}

// FitResult is the fitted cost model plus per-size comparison, sorted by size.
type FitResult struct {
	Exponent        float64
	C               float64
	Slope           float64 // NaN with a single point
	MeanOverhead    float64
	MeanAbsErrorPct float64
	Points          []Point
}

// Predict returns the model time in seconds for an n×n multiplication.
func (f FitResult) Predict(n int) float64 {
	return f.C * math.Pow(float64(n), f.Exponent)
}

// Overheads returns the per-point overheads in size order.
func (f FitResult) Overheads() []float64 {
	return lo.Map(f.Points, func(p Point, _ int) float64 { return p.Overhead })
}

// Fit estimates c in t(n) = c·n^log2(7) from samples of a single kernel.
// Implementation:
//   - Stage 1: validate (non-empty, sizes ≥ 1 and distinct, timings > 0); sort by size.
//   - Stage 2: c = exp(mean(log t − e·log n)) via stat.Mean.
//   - Stage 3: per-point theoretical time, overhead and % error.
//   - Stage 4: slope via stat.LinearRegression on (log2 n, log2 t).
//
// Errors:
//   - ErrNoSamples, ErrBadSize, ErrNonPositiveTiming (wrapped with "Fit").
//
// Complexity: O(p log p) for p samples.
func Fit(samples []Sample) (FitResult, error) {
	if len(samples) == 0 {
		return FitResult{}, experimentErrorf(opFit, ErrNoSamples)
	}
	sorted := append([]Sample(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size < sorted[j].Size })

	sizes := make([]int, len(sorted))
	for i, s := range sorted {
		sizes[i] = s.Size
		if s.Mean <= 0 {
			return FitResult{}, experimentErrorf(opFit,
				fmt.Errorf("n=%d: %v: %w", s.Size, s.Mean, ErrNonPositiveTiming))
		}
	}
	if err := validateSizes(sizes); err != nil {
		return FitResult{}, experimentErrorf(opFit, err)
	}

	e := StrassenExponent
	p := len(sorted)
	residuals := make([]float64, p)
	log2n := make([]float64, p)
	log2t := make([]float64, p)
	for i, s := range sorted {
		n, t := float64(s.Size), s.Seconds()
		residuals[i] = math.Log(t) - e*math.Log(n)
		log2n[i] = math.Log2(n)
		log2t[i] = math.Log2(t)
	}

	res := FitResult{Exponent: e, C: math.Exp(stat.Mean(residuals, nil)), Points: make([]Point, p)}
	overheads := make([]float64, p)
	absErr := make([]float64, p)
	for i, s := range sorted {
		theo := res.Predict(s.Size)
		oh := s.Seconds() / theo
		res.Points[i] = Point{
			Size:        s.Size,
			Measured:    s.Seconds(),
			Theoretical: theo,
			Overhead:    oh,
			ErrorPct:    (oh - 1) * 100,
		}
		overheads[i] = oh
		absErr[i] = math.Abs(oh-1) * 100
	}
	res.MeanOverhead = stat.Mean(overheads, nil)
	res.MeanAbsErrorPct = floats.Sum(absErr) / float64(p)
	res.Slope = slope(log2n, log2t)

	return res, nil
}

// slope regresses y on x, dropping the first point when there are three or
// more. A single point has no slope.
func slope(x, y []float64) float64 {
	switch {
	case len(x) < 2:
		return math.NaN()
	case len(x) >= 3:
		x, y = x[1:], y[1:]
	}
	_, beta := stat.LinearRegression(x, y, nil, false)

	return beta
}
