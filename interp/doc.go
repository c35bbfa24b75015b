// Package interp evaluates the interpolating polynomial through a set of
// nodes (x_i, y_i) with distinct x_i.
//
// Two classic forms are offered:
//
//   - Lagrange: direct evaluation of Σ y_i·L_i(x). O(n²) per point, no setup.
//   - Newton: divided-difference coefficients computed once (NewNewton,
//     O(n²)), then O(n) nested evaluation per point.
//
// Both forms describe the same polynomial, so they agree up to rounding.
// ErrorBound gives the classical remainder bound for a known bound on the
// n-th derivative of the interpolated function.
//
// Nodes need not be sorted or equally spaced. Inputs are never mutated.
package interp
