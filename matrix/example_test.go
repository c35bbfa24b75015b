// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// ExampleResidualNorm shows how far a candidate x is from solving A·x = b.
func ExampleResidualNorm() {
	a, _ := matrix.NewFromRows([][]float64{
		{4, 1},
		{1, 3},
	})
	b := []float64{1, 2}

	r, _ := matrix.ResidualNorm(a, []float64{0.0909, 0.6364}, b)
	fmt.Printf("%.4f\n", r)
	// Output:
	// 0.0001
}

// ExampleDense_SwapRows demonstrates the row primitive used by elimination.
func ExampleDense_SwapRows() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	_ = m.SwapRows(0, 1)
	fmt.Print(m)
	// Output:
	// [3, 4]
	// [1, 2]
}
