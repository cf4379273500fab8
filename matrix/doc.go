// Package matrix provides dense float64 matrices and the multiplication
// kernels built on them, centred on a pure Strassen multiplier.
//
// 🚀 What is inside?
//
//	• Dense: row-major flat storage with safe At/Set accessors.
//	• Add / Sub: element-wise kernels that always allocate a fresh result.
//	• Mul: the conventional O(n³) triple loop, used as the reference product.
//	• Strassen: 7-product divide-and-conquer multiplication for any shape,
//	  recursing all the way to 1×1 scalars with no cutoff.
//
// ✨ How Strassen handles arbitrary shapes:
//
//	A (m×k) · B (k×n)
//	  1. size = NextPowerOfTwo(max(m, k, n))
//	  2. PadToSquare both operands to size×size (zeros outside the original block)
//	  3. StrassenSquare on the padded pair
//	  4. Crop the size×size product back to m×n
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFrom([][]float64{{5, 6}, {7, 8}})
//	c, err := matrix.Strassen(a, b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//		// inner dimensions disagree
//	}
//
// Performance:
//
//   - Strassen: Θ(n^log2(7)) ≈ Θ(n^2.807) arithmetic operations on the padded size,
//     with high constant factors from recursion and allocation down to 1×1.
//   - Mul: Θ(m·k·n).
//
// The package is purely sequential and holds no global mutable state, so
// independent multiplications may run concurrently in separate goroutines.
package matrix
