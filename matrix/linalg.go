// SPDX-License-Identifier: MIT
// linalg.go: the few kernels the solvers need on any
// Matrix implementation: matrix-vector product, residual of a linear system
// and a condition-number estimate. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opResidual = "Residual"
	opCond     = "Cond"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, base int
		for i = 0; i < d.r; i++ {
			base = i * d.c
			y[i] = floats.Dot(d.data[base:base+d.c], x)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual returns r = A·x − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols or len(b) != Rows).
// Complexity: O(r*c).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	floats.Sub(ax, b) // ax ← ax − b in place

	return ax, nil
}

// ResidualNorm returns max_i |(A·x − b)_i|, the infinity norm of the residual.
func ResidualNorm(a Matrix, x, b []float64) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}

	return floats.Norm(r, math.Inf(1)), nil
}

// Cond estimates the 1-norm condition number of a square matrix.
// Singular matrices yield +Inf; large values flag ill-conditioned systems
// whose solutions lose roughly log10(cond) significant digits.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrInvalidDimensions (empty).
// Complexity: O(n³).
func Cond(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return 0, matrixErrorf(opCond, ErrInvalidDimensions)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	return mat.Cond(g, 1), nil
}

// toGonum copies m into a gonum dense matrix.
func toGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}
	g := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			g.Set(i, j, v)
		}
	}

	return g, nil
}
