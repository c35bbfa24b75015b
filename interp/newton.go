// SPDX-License-Identifier: MIT

package interp

import "slices"

// DividedDifferences returns the Newton coefficients
// f[x0], f[x0,x1], …, f[x0,…,x_{n−1}].
//
// The table is built in place over a copy of ys, column by column.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrNaNInf, ErrDuplicateNode.
// Complexity: Time O(n²), Space O(n).
func DividedDifferences(xs, ys []float64) ([]float64, error) {
	if err := validateNodes(xs, ys); err != nil {
		return nil, interpErrorf(opDivided, err)
	}

	return dividedDifferences(xs, ys), nil
}

func dividedDifferences(xs, ys []float64) []float64 {
	n := len(xs)
	c := slices.Clone(ys)
	var i, k int
	for k = 1; k < n; k++ {
		for i = n - 1; i >= k; i-- {
			c[i] = (c[i] - c[i-1]) / (xs[i] - xs[i-k])
		}
	}

	return c
}

// Newton is the interpolating polynomial in Newton form.
// It is immutable after construction and safe for concurrent use.
type Newton struct {
	xs   []float64
	coef []float64
}

// NewNewton builds the Newton form through (xs[i], ys[i]). Inputs are copied.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrNaNInf, ErrDuplicateNode.
// Complexity: O(n²).
func NewNewton(xs, ys []float64) (*Newton, error) {
	if err := validateNodes(xs, ys); err != nil {
		return nil, interpErrorf(opNewNewton, err)
	}

	return &Newton{xs: slices.Clone(xs), coef: dividedDifferences(xs, ys)}, nil
}

// Eval returns P(x) by nested multiplication:
// P(x) = c0 + (x−x0)(c1 + (x−x1)(c2 + …)).
// Complexity: O(n).
func (p *Newton) Eval(x float64) float64 {
	n := len(p.coef)
	v := p.coef[n-1]
	for i := n - 2; i >= 0; i-- {
		v = v*(x-p.xs[i]) + p.coef[i]
	}

	return v
}

// Coefficients returns a copy of the divided-difference coefficients.
func (p *Newton) Coefficients() []float64 { return slices.Clone(p.coef) }

// Degree returns the polynomial degree bound n−1.
func (p *Newton) Degree() int { return len(p.coef) - 1 }
