// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"
	"math"
)

// Func is the integrand.
type Func func(float64) float64

// Rule is a composite quadrature rule on n panels.
type Rule func(f Func, a, b float64, n int) (float64, error)

// NamedRule pairs a Rule with its display name.
type NamedRule struct {
	Name string
	Rule Rule
}

// Rules lists the available rules in a fixed order.
var Rules = []NamedRule{
	{Name: "midpoint", Rule: Midpoint},
	{Name: "trapezoidal", Rule: Trapezoidal},
	{Name: "simpson", Rule: Simpson},
}

// Operation tags for error wrapping.
const (
	opMidpoint    = "Midpoint"
	opTrapezoidal = "Trapezoidal"
	opSimpson     = "Simpson"
	opRunge       = "RungeEstimate"
)

func validate(f Func, a, b float64, n int) error {
	if f == nil {
		return ErrNilFunc
	}
	if !isFinite(a) || !isFinite(b) || a >= b {
		return fmt.Errorf("[%g, %g]: %w", a, b, ErrInvalidInterval)
	}
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidPanels)
	}

	return nil
}

// sample evaluates f at x and rejects non-finite values.
func sample(f Func, x float64) (float64, error) {
	y := f(x)
	if !isFinite(y) {
		return 0, fmt.Errorf("f(%g)=%g: %w", x, y, ErrNaNInf)
	}

	return y, nil
}

// Midpoint is the composite midpoint (central rectangle) rule.
// Complexity: n evaluations of f.
func Midpoint(f Func, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, quadErrorf(opMidpoint, err)
	}
	h := (b - a) / float64(n)
	var sum, y float64
	var err error
	for i := 0; i < n; i++ {
		if y, err = sample(f, a+(float64(i)+0.5)*h); err != nil {
			return 0, quadErrorf(opMidpoint, err)
		}
		sum += y
	}

	return sum * h, nil
}

// Trapezoidal is the composite trapezoidal rule.
// Complexity: n+1 evaluations of f.
func Trapezoidal(f Func, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, quadErrorf(opTrapezoidal, err)
	}
	h := (b - a) / float64(n)
	var sum, y float64
	var err error
	for i := 0; i <= n; i++ {
		if y, err = sample(f, a+float64(i)*h); err != nil {
			return 0, quadErrorf(opTrapezoidal, err)
		}
		if i == 0 || i == n {
			y /= 2
		}
		sum += y
	}

	return sum * h, nil
}

// Simpson is the composite Simpson rule. n must be even.
// Complexity: n+1 evaluations of f.
func Simpson(f Func, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, quadErrorf(opSimpson, err)
	}
	if n%2 != 0 {
		return 0, quadErrorf(opSimpson, fmt.Errorf("n=%d: %w", n, ErrOddPanels))
	}
	h := (b - a) / float64(n)
	var sum, y float64
	var err error
	for i := 0; i <= n; i++ {
		if y, err = sample(f, a+float64(i)*h); err != nil {
			return 0, quadErrorf(opSimpson, err)
		}
		switch {
		case i == 0 || i == n:
		case i%2 == 1:
			y *= 4
		default:
			y *= 2
		}
		sum += y
	}

	return sum * h / 3, nil
}

// RungeEstimate applies rule with n1 and n2 panels and returns both values
// and est = |I(n2) − I(n1)|.
//
// Errors: ErrNilFunc for a nil rule, plus any error of the rule.
func RungeEstimate(rule Rule, f Func, a, b float64, n1, n2 int) (coarse, fine, est float64, err error) {
	if rule == nil {
		return 0, 0, 0, quadErrorf(opRunge, ErrNilFunc)
	}
	if coarse, err = rule(f, a, b, n1); err != nil {
		return 0, 0, 0, quadErrorf(opRunge, err)
	}
	if fine, err = rule(f, a, b, n2); err != nil {
		return 0, 0, 0, quadErrorf(opRunge, err)
	}

	return coarse, fine, math.Abs(fine - coarse), nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
