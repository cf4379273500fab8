// SPDX-License-Identifier: MIT
// Package experiment - correctness verification.
//
// Purpose:
//   - For every configured size n, multiply seeded random operands with
//     matrix.Strassen and compare against two independent references: the
//     conventional matrix.Mul and gonum's mat.Dense.Mul.
//   - Two shapes per size: the square n×n·n×n case, and (n)×(n+1)·(n+1)×(n−1)
//     (n−1 clamped to 1), which forces padding and cropping.
//
// Concurrency:
//   - Shapes are checked concurrently with an errgroup bounded by GOMAXPROCS.
//     Each check owns its RNG stream (deriveRNG) and its operands; nothing is
//     shared between goroutines except the result slot it writes.
package experiment

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/strassen/matrix"
)

const opVerify = "Verify"

// Check is the outcome of one verified product.
type Check struct {
	Size    int // the configured size this shape was derived from
	M, K, N int // (M×K)·(K×N)
	VsNaive float64
	VsGonum float64
}

// Shape returns "MxK·KxN".
func (c Check) Shape() string { return fmt.Sprintf("%dx%d·%dx%d", c.M, c.K, c.K, c.N) }

// Verify checks Strassen against both references for every configured size.
// Implementation:
//   - Stage 1: gatherOptions; validate sizes.
//   - Stage 2: one errgroup task per (size, shape), results written by index.
//   - Stage 3: a task fails with ErrVerifyMismatch unless AllClose(tol, tol)
//     holds against both references; the first failure cancels the rest.
//
// Options used: WithSizes, WithSeed, WithTolerance, WithLogger.
//
// Returns:
//   - Checks in size order, square shape first, when every product agrees.
//
// Errors:
//   - ErrNoSizes, ErrBadSize, ErrVerifyMismatch, ctx.Err(), matrix errors.
func Verify(ctx context.Context, opts ...Option) ([]Check, error) {
	o := gatherOptions(opts...)
	if err := validateSizes(o.sizes); err != nil {
		return nil, experimentErrorf(opVerify, err)
	}

	shapes := make([][3]int, 0, 2*len(o.sizes))
	for _, n := range o.sizes {
		shapes = append(shapes, [3]int{n, n, n}, [3]int{n, n + 1, max(n-1, 1)})
	}
	checks := make([]Check, len(shapes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sh := range shapes {
		i, sh := i, sh
		size := o.sizes[i/2]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := verifyShape(deriveRNG(o.seed, uint64(i)), sh[0], sh[1], sh[2], o.tol)
			if err != nil {
				return err
			}
			c.Size = size
			checks[i] = c
			o.logger.Debug("verified", "shape", c.Shape(), "vs_naive", c.VsNaive, "vs_gonum", c.VsGonum)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, experimentErrorf(opVerify, err)
	}
	o.logger.Info("verification passed", "products", len(checks), "tolerance", o.tol)

	return checks, nil
}

// verifyShape multiplies one random (m×k)·(k×n) pair three ways and compares.
func verifyShape(rng *rand.Rand, m, k, n int, tol float64) (Check, error) {
	c := Check{M: m, K: k, N: n}
	a, err := RandomDense(rng, m, k)
	if err != nil {
		return c, err
	}
	b, err := RandomDense(rng, k, n)
	if err != nil {
		return c, err
	}

	got, err := matrix.Strassen(a, b)
	if err != nil {
		return c, err
	}
	naive, err := matrix.Mul(a, b)
	if err != nil {
		return c, err
	}
	ref, err := gonumProduct(a, b)
	if err != nil {
		return c, err
	}

	if c.VsNaive, err = matrix.MaxAbsDiff(got, naive); err != nil {
		return c, err
	}
	c.VsGonum = floats.Distance(got.(*matrix.Dense).RawData(), ref.RawData(), math.Inf(1))

	for _, want := range []matrix.Matrix{naive, ref} {
		ok, err := matrix.AllClose(got, want, tol, tol)
		if err != nil {
			return c, err
		}
		if !ok {
			return c, fmt.Errorf("%s: max |Δ| naive=%.3e gonum=%.3e tol=%g: %w",
				c.Shape(), c.VsNaive, c.VsGonum, tol, ErrVerifyMismatch)
		}
	}

	return c, nil
}

// gonumProduct computes a·b with gonum and copies the result into a *matrix.Dense.
func gonumProduct(a, b *matrix.Dense) (*matrix.Dense, error) {
	ga := mat.NewDense(a.Rows(), a.Cols(), a.RawData())
	gb := mat.NewDense(b.Rows(), b.Cols(), b.RawData())
	var gp mat.Dense
	gp.Mul(ga, gb)

	r, c := gp.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = gp.At(i, j)
		}
	}

	return matrix.NewDenseFromData(r, c, data)
}
