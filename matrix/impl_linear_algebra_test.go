// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

// TestAddSub_Basic checks element-wise results and that operands stay untouched.
func TestAddSub_Basic(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, AsDense(t, sum).ToRows())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-9, -18}, {-27, -36}}, AsDense(t, diff).ToRows())

	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows(), "Add/Sub must not mutate inputs")
}

// TestAddSub_FallbackMatchesFastPath forces the At/Set path via hide{}.
func TestAddSub_FallbackMatchesFastPath(t *testing.T) {
	a := RandomDense(t, 5, 7, 1)
	b := RandomDense(t, 5, 7, 2)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, AsDense(t, fast).RawData(), AsDense(t, slow).RawData())

	fast, err = matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err = matrix.Sub(a, hide{b})
	require.NoError(t, err)
	require.Equal(t, AsDense(t, fast).RawData(), AsDense(t, slow).RawData())
}

// TestAddSub_Errors verifies sentinel propagation through the Op wrappers.
func TestAddSub_Errors(t *testing.T) {
	_, err := matrix.Add(MustDense(t, 2, 2), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Add")

	_, err = matrix.Sub(nil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Rectangular verifies the conventional product on a 2x3 · 3x2 pair.
func TestMul_Rectangular(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, AsDense(t, c).ToRows())

	slow, err := matrix.Product(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, AsDense(t, c).RawData(), AsDense(t, slow).RawData())
}

// TestMul_Mismatch rejects incompatible inner dimensions.
func TestMul_Mismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 4, 5))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAllClose covers tolerance semantics, NaN handling and validation.
func TestAllClose(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-15)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, hide{b}, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	withNaN := MustFrom(t, [][]float64{{math.NaN(), 2}, {3, 4}})
	ok, err = matrix.AllClose(withNaN, a, 1, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN never compares close")

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMaxAbsDiff returns the worst element-wise deviation.
func TestMaxAbsDiff(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{1, 2.5}, {2, 4}})

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	_, err = matrix.MaxAbsDiff(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestIdentityAndZerosLike covers the facade constructors.
func TestIdentityAndZerosLike(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.ToRows())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.ZerosLike(MustDense(t, 2, 5))
	require.NoError(t, err)
	r, c := z.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 5, c)
}

// TestFacadesDelegate checks the alias entry points against their kernels.
func TestFacadesDelegate(t *testing.T) {
	a := IntegerDense(t, 3, 3, 1)
	b := IntegerDense(t, 3, 3, 2)

	pairs := []struct {
		name      string
		got, want func(x, y matrix.Matrix) (matrix.Matrix, error)
	}{
		{"Sum", matrix.Sum, matrix.Add},
		{"Diff", matrix.Diff, matrix.Sub},
		{"Product", matrix.Product, matrix.Mul},
		{"StrassenProduct", matrix.StrassenProduct, matrix.Strassen},
	}
	for _, p := range pairs {
		got, err := p.got(a, b)
		require.NoError(t, err, p.name)
		want, err := p.want(a, b)
		require.NoError(t, err, p.name)
		require.Equal(t, AsDense(t, want).RawData(), AsDense(t, got).RawData(), p.name)
	}

	z, err := matrix.NewZeros(2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, z.ToRows())
}
