// SPDX-License-Identifier: MIT
// Package matrix - pure Strassen multiplication.
//
// Purpose:
//   - Shape normalization: round (m, k, n) up to one power-of-two size, zero-pad
//     both operands into size×size squares, crop the product back to m×n.
//   - Recursive multiplication: the 7-product Strassen scheme on square
//     power-of-two operands, recursing all the way down to 1×1 scalars.
//
// Contract:
//   - The inner-dimension check (a.Cols == b.Rows) is the only validated
//     precondition and runs before any padding or recursion.
//   - StrassenSquare trusts its caller: both operands n×n, n a power of two.
//   - There is no base-case cutoff to the conventional algorithm. The recursion
//     and allocation overhead at small n is the behavior being measured.
//
// Memory model:
//   - Quadrants are copies, and every sum, difference and product allocates new
//     storage, so no call ever writes into an operand or a sibling's data.
//
// Complexity quicksheet:
//   - StrassenSquare(n): T(n) = 7·T(n/2) + Θ(n²) ⇒ Θ(n^log2(7)) ≈ Θ(n^2.807).
//   - Recursion depth: log2(n) + 1 frames.
//   - Strassen(m×k, k×n): padding/cropping Θ(size²) + StrassenSquare(size).

package matrix

import (
	"fmt"
	"math/bits"
)

// strassenLeaf is the operand size at which the recursion multiplies scalars.
const strassenLeaf = 1

const (
	opStrassen    = "Strassen"
	opPadToSquare = "PadToSquare"
	opCrop        = "Crop"
)

// NextPowerOfTwo returns the smallest power of two ≥ n.
//
// Behavior highlights:
//   - n ≤ 1 maps to 1 (covers 0 and negative sizes).
//   - A power of two maps to itself.
//
// Complexity: O(1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// PadToSquare embeds m into the top-left corner of a size×size zero matrix.
// MAIN DESCRIPTION:
//   - Original values land at their original coordinates bit-for-bit; every other
//     cell holds exactly 0 (the additive identity), so cropping the product of two
//     padded operands yields the product of the originals.
//
// Implementation:
//   - Stage 1: ValidateNotNil; require size ≥ max(rows, cols) and size > 0.
//   - Stage 2: allocate a zeroed size×size Dense.
//   - Stage 3: copy rows (flat copy for *Dense, At otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (wrapped with opPadToSquare).
//
// Complexity:
//   - Time O(size²), Space O(size²).
func PadToSquare(m Matrix, size int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPadToSquare, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if size <= 0 || rows < 0 || cols < 0 || rows > size || cols > size {
		return nil, matrixErrorf(opPadToSquare,
			fmt.Errorf("%dx%d into %dx%d: %w", rows, cols, size, size, ErrBadShape))
	}

	out := newSquare(size)
	if err := copyBlock(out, m, rows, cols); err != nil {
		return nil, matrixErrorf(opPadToSquare, err)
	}

	return out, nil
}

// Crop returns a copy of the top-left rows×cols block of m.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//   - ErrBadShape when the window exceeds m.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Crop(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCrop, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opCrop, ErrInvalidDimensions)
	}
	if rows > m.Rows() || cols > m.Cols() {
		return nil, matrixErrorf(opCrop,
			fmt.Errorf("%dx%d from %dx%d: %w", rows, cols, m.Rows(), m.Cols(), ErrBadShape))
	}
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	if err := copyBlock(out, m, rows, cols); err != nil {
		return nil, matrixErrorf(opCrop, err)
	}

	return out, nil
}

// copyBlock copies src[0:rows, 0:cols] into the top-left of dst.
// Bounds are the caller's responsibility.
func copyBlock(dst *Dense, src Matrix, rows, cols int) error {
	var i, j int
	if ds, ok := src.(*Dense); ok {
		for i = 0; i < rows; i++ {
			copy(dst.data[i*dst.c:i*dst.c+cols], ds.data[i*ds.c:i*ds.c+cols])
		}
		return nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			dst.data[i*dst.c+j] = v
		}
	}

	return nil
}

// Strassen multiplies A (m×k) by B (k×n) with the pure Strassen recursion.
// MAIN DESCRIPTION:
//   - Shape normalizer around StrassenSquare: validate, pad, recurse, crop.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). A mismatch fails here, before any allocation.
//   - Stage 2: size = NextPowerOfTwo(max(m, k, n)).
//   - Stage 3: PadToSquare both operands to size×size.
//   - Stage 4: StrassenSquare on the padded pair.
//   - Stage 5: Crop the product to m×n.
//
// Behavior highlights:
//   - Result shape is always exactly (m, n), whatever the padded size.
//   - Operands are never mutated.
//   - k == 0 (possible only for custom Matrix implementations) yields the m×n zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//   - ErrInvalidDimensions when m or n is not positive (no Dense can hold the result).
//
// Complexity:
//   - Time Θ(size^log2(7)), Space Θ(size²) live at the top level.
func Strassen(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	if m <= 0 || n <= 0 || k < 0 {
		return nil, matrixErrorf(opStrassen,
			fmt.Errorf("(%dx%d)·(%dx%d): %w", m, k, k, n, ErrInvalidDimensions))
	}

	size := NextPowerOfTwo(max(m, k, n))
	ap, err := PadToSquare(a, size)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	bp, err := PadToSquare(b, size)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}

	c, err := Crop(StrassenSquare(ap, bp), m, n)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}

	return c, nil
}

// StrassenSquare returns A·B for square power-of-two operands of equal size.
// MAIN DESCRIPTION:
//   - n == 1: the 1×1 scalar product.
//   - n > 1: split A and B into n/2 quadrants and form seven products
//
//	P1 = (A11+A22)(B11+B22)    P5 = (A11+A12)B22
//	P2 = (A21+A22)B11          P6 = (A21−A11)(B11+B12)
//	P3 = A11(B12−B22)          P7 = (A12−A22)(B21+B22)
//	P4 = A22(B21−B11)
//
//	C11 = P1 + P4 − P5 + P7    C12 = P3 + P5
//	C21 = P2 + P4              C22 = P1 − P2 + P3 + P6
//
// Precondition (unchecked):
//   - a and b are non-nil, both n×n, n a power of two ≥ 1. Anything else is a
//     contract violation; use Strassen for arbitrary shapes.
//
// Determinism:
//   - Fixed product and combination order; sums associate left to right.
//
// Complexity:
//   - Time Θ(n^log2(7)), recursion depth log2(n)+1.
func StrassenSquare(a, b *Dense) *Dense {
	n := a.r
	if n == strassenLeaf {
		out := newSquare(strassenLeaf)
		out.data[0] = a.data[0] * b.data[0]

		return out
	}

	h := n / 2
	a11, a12, a21, a22 := quadrant(a, 0, 0, h), quadrant(a, 0, h, h), quadrant(a, h, 0, h), quadrant(a, h, h, h)
	b11, b12, b21, b22 := quadrant(b, 0, 0, h), quadrant(b, 0, h, h), quadrant(b, h, 0, h), quadrant(b, h, h, h)

	p1 := StrassenSquare(plus(a11, a22), plus(b11, b22))
	p2 := StrassenSquare(plus(a21, a22), b11)
	p3 := StrassenSquare(a11, minus(b12, b22))
	p4 := StrassenSquare(a22, minus(b21, b11))
	p5 := StrassenSquare(plus(a11, a12), b22)
	p6 := StrassenSquare(minus(a21, a11), plus(b11, b12))
	p7 := StrassenSquare(minus(a12, a22), plus(b21, b22))

	c11 := plus(minus(plus(p1, p4), p5), p7)
	c12 := plus(p3, p5)
	c21 := plus(p2, p4)
	c22 := plus(plus(minus(p1, p2), p3), p6)

	return assemble(c11, c12, c21, c22)
}

// quadrant copies the h×h block of m whose top-left corner is (r0, c0).
func quadrant(m *Dense, r0, c0, h int) *Dense {
	out := newSquare(h)
	var i, src int
	for i = 0; i < h; i++ {
		src = (r0+i)*m.c + c0
		copy(out.data[i*h:(i+1)*h], m.data[src:src+h])
	}

	return out
}

// plus returns x + y in fresh storage; shapes match by construction.
func plus(x, y *Dense) *Dense {
	out := newSquare(x.r)
	denseAddSub(out.data, x.data, y.data, +1)

	return out
}

// minus returns x − y in fresh storage; shapes match by construction.
func minus(x, y *Dense) *Dense {
	out := newSquare(x.r)
	denseAddSub(out.data, x.data, y.data, -1)

	return out
}

// assemble places four h×h quadrants into a new 2h×2h matrix:
//
//	[ c11 c12 ]
//	[ c21 c22 ]
func assemble(c11, c12, c21, c22 *Dense) *Dense {
	h := c11.r
	n := 2 * h
	out := newSquare(n)
	var i, top, bottom int
	for i = 0; i < h; i++ {
		top = i * n
		bottom = (i + h) * n
		copy(out.data[top:top+h], c11.data[i*h:(i+1)*h])
		copy(out.data[top+h:top+n], c12.data[i*h:(i+1)*h])
		copy(out.data[bottom:bottom+h], c21.data[i*h:(i+1)*h])
		copy(out.data[bottom+h:bottom+n], c22.data[i*h:(i+1)*h])
	}

	return out
}
