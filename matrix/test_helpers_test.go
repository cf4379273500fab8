// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite unless a test opts into NaN/Inf explicitly.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths; results must
// match the *Dense fast path bit for bit.
type hide struct{ matrix.Matrix }

// counting wraps a Matrix and counts At calls, to prove that rejected
// inputs are never read.
type counting struct {
	matrix.Matrix
	reads int
}

func (c *counting) At(i, j int) (float64, error) {
	c.reads++
	return c.Matrix.At(i, j)
}

// shapeOnly is a Matrix with arbitrary (possibly empty) dimensions and no cells.
// Dense forbids empty shapes, so this is the only way to exercise k == 0.
type shapeOnly struct{ r, c int }

func (s shapeOnly) Rows() int                     { return s.r }
func (s shapeOnly) Cols() int                     { return s.c }
func (s shapeOnly) At(i, j int) (float64, error)  { return 0, matrix.ErrOutOfRange }
func (s shapeOnly) Set(i, j int, v float64) error { return matrix.ErrOutOfRange }
func (s shapeOnly) Clone() matrix.Matrix          { return s }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom builds a *Dense from literal rows or fails the test.
func MustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// RandomDense returns an r×c *Dense with entries in [-1,1) from a seeded source.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	if err != nil {
		tb.Fatalf("NewDenseFromData(%d,%d): %v", r, c, err)
	}

	return m
}

// IntegerDense returns an r×c *Dense with small integer entries in [-9, 9].
// Every Strassen intermediate stays an exact integer in float64, so results can
// be compared with ==.
func IntegerDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(19) - 9)
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	if err != nil {
		tb.Fatalf("NewDenseFromData(%d,%d): %v", r, c, err)
	}

	return m
}

// AsDense asserts that m is a *Dense or fails the test.
func AsDense(tb testing.TB, m matrix.Matrix) *matrix.Dense {
	tb.Helper()
	d, ok := m.(*matrix.Dense)
	if !ok {
		tb.Fatalf("expected *matrix.Dense, got %T", m)
	}

	return d
}
