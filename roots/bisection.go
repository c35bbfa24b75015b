// SPDX-License-Identifier: MIT

package roots

import "fmt"

// Bisection finds a root of f in [a, b] by repeated halving.
//
// Implementation:
//   - Stage 1: validate the interval; an exact zero at an endpoint is returned
//     as is; otherwise require f(a)·f(b) < 0.
//   - Stage 2: while |b − a| ≥ ε, evaluate the midpoint c and keep the half
//     whose endpoints still differ in sign; f(c) == 0 returns c at once.
//   - Stage 3: return the midpoint of the final interval.
//
// Errors:
//   - ErrInvalidInterval, ErrNaNInf, ErrNoSignChange.
//   - ErrNonConvergence when the cap is hit (ε below the float spacing of the root).
//
// Complexity: ⌈log2((b−a)/ε)⌉ evaluations of f.
func Bisection(f Func, a, b float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	fa, fb, err := checkInterval(f, a, b)
	if err != nil {
		return 0, rootsErrorf(opBisection, err)
	}
	switch {
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case fa*fb > 0:
		return 0, rootsErrorf(opBisection, ErrNoSignChange)
	}

	var c, fc float64
	for k := 0; b-a >= o.tol; k++ {
		if k == o.maxIter {
			return 0, rootsErrorf(opBisection, fmt.Errorf("%d halvings: %w", k, ErrNonConvergence))
		}
		c = (a + b) / 2
		fc = f(c)
		switch {
		case fc == 0:
			return c, nil
		case fc*fa < 0:
			b = c
		default:
			a, fa = c, fc
		}
	}

	return (a + b) / 2, nil
}
