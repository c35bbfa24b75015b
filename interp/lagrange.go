// SPDX-License-Identifier: MIT

package interp

// Lagrange evaluates the Lagrange form of the interpolating polynomial at x:
//
//	P(x) = Σ_i y_i · Π_{j≠i} (x − x_j)/(x_i − x_j)
//
// A single node yields the constant y_0. At a node x = x_k the result is y_k.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrNaNInf, ErrDuplicateNode.
// Complexity: O(n²) per call.
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	if err := validateNodes(xs, ys); err != nil {
		return 0, interpErrorf(opLagrange, err)
	}
	if !isFinite(x) {
		return 0, interpErrorf(opLagrange, ErrNaNInf)
	}

	var p, basis float64
	var i, j int
	for i = range xs {
		basis = 1
		for j = range xs {
			if i != j {
				basis *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		p += ys[i] * basis
	}

	return p, nil
}

// ErrorBound returns the interpolation remainder bound at x,
//
//	|f(x) − P(x)| ≤ m · |Π_i (x − x_i)| / n!
//
// for n nodes, where m bounds |f⁽ⁿ⁾| on the interval spanned by the nodes and x.
//
// Errors: ErrTooFewPoints, ErrNaNInf (non-finite x, node or m, or negative m).
// Complexity: O(n).
func ErrorBound(xs []float64, x, m float64) (float64, error) {
	if len(xs) == 0 {
		return 0, interpErrorf(opErrorBound, ErrTooFewPoints)
	}
	if !isFinite(x) || !isFinite(m) || m < 0 {
		return 0, interpErrorf(opErrorBound, ErrNaNInf)
	}
	omega := 1.0
	for i, xi := range xs {
		if !isFinite(xi) {
			return 0, interpErrorf(opErrorBound, ErrNaNInf)
		}
		omega *= (x - xi) / float64(i+1) // fold n! in to stay in range
	}
	if omega < 0 {
		omega = -omega
	}

	return m * omega, nil
}
