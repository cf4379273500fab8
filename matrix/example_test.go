// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleStrassen
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply the 2×2 pair that fits one level of the recursion exactly.
//	  A = [[1, 2], [3, 4]]
//	  B = [[5, 6], [7, 8]]
//
// Complexity: 7 scalar products at the leaves, no padding.
func ExampleStrassen() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFrom([][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Strassen(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleStrassen_rectangular pads (2×3)·(3×2) to 4×4 and crops the result.
func ExampleStrassen_rectangular() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]float64{{7, 8}, {9, 10}, {11, 12}})

	fmt.Println("padded size:", matrix.NextPowerOfTwo(3))
	c, err := matrix.Strassen(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("shape: %dx%d\n", c.Rows(), c.Cols())
	fmt.Print(c)
	// Output:
	// padded size: 4
	// shape: 2x2
	// [58, 64]
	// [139, 154]
}

// ExampleStrassen_mismatch shows the inner-dimension check.
func ExampleStrassen_mismatch() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(4, 5)

	_, err := matrix.Strassen(a, b)
	fmt.Println(err)
	// Output:
	// Strassen: ValidateMulCompatible: (2x3)·(4x5): matrix: dimension mismatch
}

// ExamplePadToSquare embeds a 2×3 matrix into a 4×4 zero square.
func ExamplePadToSquare() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})

	p, _ := matrix.PadToSquare(m, 4)
	fmt.Print(p)
	c, _ := matrix.Crop(p, 2, 3)
	fmt.Print(c)
	// Output:
	// [1, 2, 3, 0]
	// [4, 5, 6, 0]
	// [0, 0, 0, 0]
	// [0, 0, 0, 0]
	// [1, 2, 3]
	// [4, 5, 6]
}
