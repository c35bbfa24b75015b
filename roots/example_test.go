// SPDX-License-Identifier: MIT

package roots_test

import (
	"fmt"
	"math"

	"github.com/AlekseyKhaleev/Comp-Math/roots"
)

// Example compares the three methods on x³ + 0.2x² + 0.5x − 1.2 = 0.
func Example() {
	f := func(x float64) float64 { return x*x*x + 0.2*x*x + 0.5*x - 1.2 }
	g := func(x float64) float64 { return math.Cbrt(1.2 - 0.2*x*x - 0.5*x) }

	a, b, err := roots.Bracket(f, 0, 0.01, 1000)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Printf("bracket [%.2f, %.2f]\n", a, b)

	x1, _ := roots.Bisection(f, a, b)
	x2, _ := roots.Newton(f, a, b)
	x3, _ := roots.FixedPoint(f, g, a, b)
	fmt.Printf("bisection %.4f\nnewton    %.4f\niteration %.4f\n", x1, x2, x3)
	// Output:
	// bracket [0.85, 0.86]
	// bisection 0.8554
	// newton    0.8554
	// iteration 0.8554
}
