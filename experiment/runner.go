// SPDX-License-Identifier: MIT
// Package experiment - timing runner.
//
// Purpose:
//   - Time each selected kernel on seeded random n×n operands and record the
//     mean of a fixed number of repeats per size.
//
// Contract:
//   - Operands for size n are generated once and shared by every kernel and
//     repeat at that size, so kernels are compared on identical inputs.
//   - ctx is checked between calls; a single multiplication is never interrupted.
//   - Only the multiplication call is inside the timed window.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/strassen/matrix"
)

const opRun = "Run"

// Sample is the averaged timing of one kernel at one size.
type Sample struct {
	Kernel  Kernel
	Size    int
	Mean    time.Duration
	Repeats int
}

// Seconds returns the mean as floating-point seconds.
func (s Sample) Seconds() float64 { return s.Mean.Seconds() }

// Report is the outcome of Run.
type Report struct {
	Environment Environment
	Started     time.Time
	Samples     []Sample
}

// ForKernel returns the samples of kernel k, in run order.
func (r Report) ForKernel(k Kernel) []Sample {
	return lo.Filter(r.Samples, func(s Sample, _ int) bool { return s.Kernel == k })
}

// multiplier is the shared signature of matrix.Strassen and matrix.Mul.
type multiplier func(a, b matrix.Matrix) (matrix.Matrix, error)

func kernelFunc(k Kernel) (multiplier, error) {
	switch k {
	case KernelStrassen:
		return matrix.Strassen, nil
	case KernelNaive:
		return matrix.Mul, nil
	default:
		return nil, fmt.Errorf("%q: %w", k, ErrUnknownKernel)
	}
}

// Run times the configured kernels over the configured sizes.
// MAIN DESCRIPTION:
//   - For every size n (in the given order): draw A and B from U[0,1), run the
//     warmup calls, then time Repeats calls of each kernel and store the mean.
//
// Implementation:
//   - Stage 1: gatherOptions and validate sizes, repeats, warmup and kernels.
//   - Stage 2: one RNG for the whole run (NewRand(seed)); operands drawn per size.
//   - Stage 3: per call, measure time.Since around the multiplication only.
//
// Errors:
//   - ErrNoSizes, ErrBadSize, ErrBadRepeats, ErrUnknownKernel (invalid options).
//   - ctx.Err() when cancelled; samples completed so far are returned with it.
//   - Any error from the kernel itself, wrapped with the size.
//
// Complexity:
//   - Σ over sizes of (warmup+repeats)·cost(kernel, n).
func Run(ctx context.Context, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	rep := Report{Environment: DetectEnvironment(), Started: time.Now()}
	if err := o.validateRun(); err != nil {
		return rep, experimentErrorf(opRun, err)
	}

	rng := NewRand(o.seed)
	o.logger.Info("run started",
		"sizes", o.sizes, "repeats", o.repeats, "warmup", o.warmup,
		"kernels", o.kernels, "seed", o.seed)

	for _, n := range o.sizes {
		a, err := RandomDense(rng, n, n)
		if err != nil {
			return rep, experimentErrorf(opRun, err)
		}
		b, err := RandomDense(rng, n, n)
		if err != nil {
			return rep, experimentErrorf(opRun, err)
		}

		for _, k := range o.kernels {
			s, err := timeKernel(ctx, o, k, a, b)
			if err != nil {
				return rep, experimentErrorf(opRun, err)
			}
			rep.Samples = append(rep.Samples, s)
			o.logger.Info("size measured",
				"kernel", string(k), "n", n, "mean_seconds", s.Seconds(), "repeats", s.Repeats)
		}
	}

	return rep, nil
}

// timeKernel runs warmups, then averages o.repeats timed calls of k on (a, b).
func timeKernel(ctx context.Context, o Options, k Kernel, a, b *matrix.Dense) (Sample, error) {
	mul, err := kernelFunc(k)
	if err != nil {
		return Sample{}, err
	}
	n := a.Rows()

	var i int
	for i = 0; i < o.warmup; i++ {
		if err = ctx.Err(); err != nil {
			return Sample{}, err
		}
		if _, err = mul(a, b); err != nil {
			return Sample{}, fmt.Errorf("n=%d warmup: %w", n, err)
		}
	}

	var (
		total   time.Duration
		elapsed time.Duration
		start   time.Time
	)
	for i = 0; i < o.repeats; i++ {
		if err = ctx.Err(); err != nil {
			return Sample{}, err
		}
		start = time.Now()
		_, err = mul(a, b)
		elapsed = time.Since(start)
		if err != nil {
			return Sample{}, fmt.Errorf("n=%d: %w", n, err)
		}
		total += elapsed
		o.logger.Debug("repeat", "kernel", string(k), "n", n, "repeat", i, "elapsed", elapsed)
	}

	return Sample{Kernel: k, Size: n, Mean: total / time.Duration(o.repeats), Repeats: o.repeats}, nil
}
