// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Len → Finite).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Errors: ErrDimensionMismatch if not square. O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as ErrNilMatrix. O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every cell of m and rejects NaN/±Inf.
// Assumes m is not nil. Errors: ErrNaNInf (wrapped with coordinates). O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for off, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, off/d.c, off%d.c, ErrNaNInf))
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteVec rejects NaN/±Inf entries of x. O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFiniteVec", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSystem checks a square linear system A·x = b.
// Sequence: NotNil(A) → Square(A) → VecLen(b, n) → Finite(A) → Finite(b).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²).
func ValidateSystem(a Matrix, b []float64) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.Rows() <= 0 || a.Cols() <= 0 {
		return validatorErrorf("ValidateSystem", ErrInvalidDimensions)
	}
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return err
	}
	if err := ValidateFinite(a); err != nil {
		return err
	}

	return ValidateFiniteVec(b)
}
