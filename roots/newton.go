// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Newton refines a root of f in [a, b] with tangent steps
// x_{k+1} = x_k − f(x_k)/f'(x_k), starting at the midpoint (a+b)/2.
//
// The derivative is taken from WithDerivative when given, else estimated by a
// central finite difference. Iteration stops when |x_{k+1} − x_k| < ε.
// The iterate is not confined to [a, b].
//
// Errors:
//   - ErrInvalidInterval, ErrNaNInf, ErrNoSignChange (as in Bisection).
//   - ErrZeroDerivative when f'(x_k) is zero or not finite.
//   - ErrNonConvergence after the cap or on a non-finite iterate.
//
// Complexity: O(k) evaluations of f (three per step with the finite difference).
func Newton(f Func, a, b float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	fa, fb, err := checkInterval(f, a, b)
	if err != nil {
		return 0, rootsErrorf(opNewton, err)
	}
	if fa*fb > 0 {
		return 0, rootsErrorf(opNewton, ErrNoSignChange)
	}

	df := o.df
	if df == nil {
		df = func(x float64) float64 { return derivative(f, x) }
	}

	x := (a + b) / 2
	var next, d float64
	for k := 1; k <= o.maxIter; k++ {
		d = df(x)
		if d == 0 || !isFinite(d) {
			return 0, rootsErrorf(opNewton, fmt.Errorf("x=%g: %w", x, ErrZeroDerivative))
		}
		next = x - f(x)/d
		if !isFinite(next) {
			return 0, rootsErrorf(opNewton, fmt.Errorf("iteration %d: non-finite iterate: %w", k, ErrNonConvergence))
		}
		if math.Abs(next-x) < o.tol {
			return next, nil
		}
		x = next
	}

	return 0, rootsErrorf(opNewton, fmt.Errorf("%d iterations: %w", o.maxIter, ErrNonConvergence))
}
