// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Func is a real function of one real variable.
type Func func(float64) float64

// Operation tags for error wrapping.
const (
	opBracket    = "Bracket"
	opBisection  = "Bisection"
	opNewton     = "Newton"
	opFixedPoint = "FixedPoint"
)

// Bracket scans [start+k·step, start+(k+1)·step] for k = 0, 1, … and returns
// the first interval with f(a)·f(b) ≤ 0.
//
// Grid points are computed as start + k·step, so no rounding drift builds up
// over long scans.
//
// Errors:
//   - ErrInvalidStep when step is not finite and > 0, or maxSteps <= 0.
//   - ErrInvalidInterval when start is not finite.
//   - ErrNoBracket when no sign change occurs within maxSteps intervals.
//
// Complexity: O(maxSteps) evaluations of f.
func Bracket(f Func, start, step float64, maxSteps int) (a, b float64, err error) {
	if !isFinite(step) || step <= 0 || maxSteps <= 0 {
		return 0, 0, rootsErrorf(opBracket, ErrInvalidStep)
	}
	if !isFinite(start) {
		return 0, 0, rootsErrorf(opBracket, ErrInvalidInterval)
	}

	a = start
	fa := f(a)
	for k := 1; k <= maxSteps; k++ {
		b = start + float64(k)*step
		fb := f(b)
		if fa*fb <= 0 {
			return a, b, nil
		}
		a, fa = b, fb
	}

	return 0, 0, rootsErrorf(opBracket, fmt.Errorf("%d steps of %g from %g: %w", maxSteps, step, start, ErrNoBracket))
}

// checkInterval validates a < b and evaluates f at both ends.
func checkInterval(f Func, a, b float64) (fa, fb float64, err error) {
	if !isFinite(a) || !isFinite(b) || a >= b {
		return 0, 0, fmt.Errorf("[%g, %g]: %w", a, b, ErrInvalidInterval)
	}
	fa, fb = f(a), f(b)
	if !isFinite(fa) || !isFinite(fb) {
		return 0, 0, fmt.Errorf("f(a)=%g f(b)=%g: %w", fa, fb, ErrNaNInf)
	}

	return fa, fb, nil
}

// derivative estimates f'(x) with gonum's central difference.
func derivative(f Func, x float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central})
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
