// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// Operation tags for error wrapping.
const (
	opGauss  = "Gauss"
	opJacobi = "Jacobi"
	opSeidel = "Seidel"
	opSolve  = "Solve"
)

// Gauss solves A·x = b by Gauss elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate (nil, square, len(b) == n, finite entries).
//   - Stage 2: copy A and b into a private n×(n+1) augmented system.
//   - Stage 3: for each column i pick the row with the largest |a[p][i]|
//     among rows i..n-1 (first maximum wins), swap it into row i, reject the
//     pivot if |a[i][i]| ≤ pivot tolerance or NaN, then zero column i below row i.
//   - Stage 4: back-substitute from the last row up; a non-finite x is an error.
//
// Inputs:
//   - a: square Matrix, never mutated.
//   - b: right-hand side, len(b) == a.Rows(), never mutated.
//   - opts: WithPivotTolerance (others are ignored).
//
// Errors:
//   - ErrDimensionMismatch, matrix.ErrNilMatrix, matrix.ErrNaNInf, matrix.ErrInvalidDimensions.
//   - *PivotError (unwraps to ErrSingularSystem) at the first rejected pivot.
//   - matrix.ErrNaNInf when finite input overflows during elimination or
//     back substitution; no partial solution is returned.
//
// Determinism:
//   - Fixed scan and elimination order; identical inputs give bitwise identical x.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented copy.
func Gauss(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(opGauss, err)
	}
	n := a.Rows()

	aug, err := augment(a, b)
	if err != nil {
		return nil, solverErrorf(opGauss, err)
	}
	// Row views alias aug storage; SwapRows moves data, so rows[i] is always row i.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		if rows[i], err = aug.RowView(i); err != nil {
			return nil, solverErrorf(opGauss, err)
		}
	}

	var (
		i, j, k, p   int
		best, v, fac float64
		pivot, row   []float64
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: strict '>' keeps the first maximum.
		p, best = i, math.Abs(rows[i][i])
		for j = i + 1; j < n; j++ {
			if v = math.Abs(rows[j][i]); v > best {
				p, best = j, v
			}
		}
		if p != i {
			if err = aug.SwapRows(i, p); err != nil {
				return nil, solverErrorf(opGauss, err)
			}
		}
		pivot = rows[i]
		if math.IsInf(pivot[i], 0) {
			return nil, solverErrorf(opGauss, fmt.Errorf("column %d: pivot overflowed: %w", i, matrix.ErrNaNInf))
		}
		// Negated so that a NaN pivot is rejected too.
		if !(math.Abs(pivot[i]) > o.pivotTol) {
			return nil, solverErrorf(opGauss, &PivotError{Column: i, Pivot: pivot[i], Tolerance: o.pivotTol})
		}

		// Eliminate column i below the pivot.
		for j = i + 1; j < n; j++ {
			row = rows[j]
			fac = row[i] / pivot[i]
			row[i] = 0
			if fac == 0 {
				continue
			}
			for k = i + 1; k <= n; k++ {
				row[k] -= fac * pivot[k]
			}
		}
	}

	// Back substitution on the upper-triangular system.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		row = rows[i]
		sum = row[n]
		for k = i + 1; k < n; k++ {
			sum -= row[k] * x[k]
		}
		x[i] = sum / row[i]
	}
	if !allFinite(x) {
		return nil, solverErrorf(opGauss, fmt.Errorf("back substitution overflowed: %w", matrix.ErrNaNInf))
	}

	return x, nil
}

// augment copies [A | b] into a fresh n×(n+1) Dense.
func augment(a matrix.Matrix, b []float64) (*matrix.Dense, error) {
	n := a.Rows()
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	var row []float64
	for i = 0; i < n; i++ {
		if row, err = aug.RowView(i); err != nil {
			return nil, err
		}
		if d, ok := a.(*matrix.Dense); ok {
			src, _ := d.RowView(i) // i < n == d.Rows()
			copy(row, src)
		} else {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				row[j] = v
			}
		}
		row[n] = b[i]
	}

	return aug, nil
}
