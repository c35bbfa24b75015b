// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// FixedPoint solves f(x) = 0 through an equivalent form x = g(x).
//
// Implementation:
//   - Stage 1: validate [a, b]; require |g'(a)| < 1 and |g'(b)| < 1
//     (central finite differences), the usual sufficient condition for a
//     contraction near the root.
//   - Stage 2: x ← g(a), then x ← g(x) until |f(x)| < ε.
//
// Errors:
//   - ErrInvalidInterval, ErrNaNInf.
//   - ErrNotContraction when an endpoint derivative check fails.
//   - ErrNonConvergence after the cap or on a non-finite iterate.
//
// Complexity: O(k) evaluations of f and g.
func FixedPoint(f, g Func, a, b float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if _, _, err := checkInterval(f, a, b); err != nil {
		return 0, rootsErrorf(opFixedPoint, err)
	}
	for _, p := range [2]float64{a, b} {
		if d := derivative(g, p); !(math.Abs(d) < 1) {
			return 0, rootsErrorf(opFixedPoint, fmt.Errorf("g'(%g)=%g: %w", p, d, ErrNotContraction))
		}
	}

	x := g(a)
	for k := 1; k <= o.maxIter; k++ {
		if !isFinite(x) {
			return 0, rootsErrorf(opFixedPoint, fmt.Errorf("iteration %d: non-finite iterate: %w", k, ErrNonConvergence))
		}
		if math.Abs(f(x)) < o.tol {
			return x, nil
		}
		x = g(x)
	}

	return 0, rootsErrorf(opFixedPoint, fmt.Errorf("%d iterations: %w", o.maxIter, ErrNonConvergence))
}
