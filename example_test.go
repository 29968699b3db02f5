// SPDX-License-Identifier: MIT
package coda_test

import (
	"fmt"

	"github.com/katalvlaran/coda"
	"github.com/katalvlaran/coda/frame"
)

// ExampleALR transforms a two-row geochemical composition using the default
// reference part (the last column, d). The output carries one column per
// remaining part, each cell ln(part/d).
func ExampleALR() {
	f, _ := frame.New(
		[]string{"a", "b", "c", "d"},
		[][]float64{
			{65, 12, 18, 5},
			{63, 16, 15, 6},
		},
	)

	out, err := coda.ALR(f, nil) // nil options: denominator = last column
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Names())
	for r := 0; r < out.NumRows(); r++ {
		row, _ := out.Row(r)
		fmt.Printf("%.4f\n", row)
	}
	// Output:
	// [a b c]
	// [2.5649 0.8755 1.2809]
	// [2.3514 0.9808 0.9163]
}

// ExampleCLR centers a composition on its row-wise geometric mean. A row of
// identical values maps to exact zeros, and every output row sums to zero.
func ExampleCLR() {
	f, _ := frame.New(
		[]string{"a", "b", "c", "d"},
		[][]float64{
			{1, 1, 1, 1},
			{80, 10, 5, 5},
		},
	)

	out, err := coda.CLR(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Names())
	for r := 0; r < out.NumRows(); r++ {
		row, _ := out.Row(r)
		fmt.Printf("%.4f\n", row)
	}
	// Output:
	// [a b c d]
	// [0.0000 0.0000 0.0000 0.0000]
	// [1.9062 -0.1733 -0.8664 -0.8664]
}
