// SPDX-License-Identifier: MIT
// Package linsolve: sentinel and typed errors.
// Sentinels are matched with errors.Is; typed errors carry diagnostics and
// unwrap to their sentinel, so errors.Is and errors.As both work on any
// error returned by this package.

package linsolve

import (
	"errors"
	"fmt"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

var (
	// ErrDimensionMismatch is returned when A is not square or len(b) != n.
	// It is the same sentinel as matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingularSystem is returned by Gauss when, after row selection, a pivot
	// magnitude is within the pivot tolerance: no unique solution at working precision.
	ErrSingularSystem = errors.New("linsolve: singular system")

	// ErrZeroDiagonal is returned by the iterative solvers when a diagonal
	// entry is exactly zero and the per-row update is undefined.
	ErrZeroDiagonal = errors.New("linsolve: zero diagonal entry")

	// ErrNonConvergence is returned by the iterative solvers when the
	// convergence test is not satisfied within the iteration cap.
	ErrNonConvergence = errors.New("linsolve: iteration did not converge")

	// ErrPossibleDivergence is returned when WithDominanceCheck is set and the
	// matrix is not strictly row diagonally dominant.
	ErrPossibleDivergence = errors.New("linsolve: matrix is not diagonally dominant")

	// ErrUnknownMethod is returned by Solve and ParseMethod for unsupported methods.
	ErrUnknownMethod = errors.New("linsolve: unknown method")

	// ErrUnknownCriterion is returned by ParseCriterion for unsupported names.
	ErrUnknownCriterion = errors.New("linsolve: unknown convergence criterion")
)

// PivotError reports the column at which elimination stopped.
type PivotError struct {
	Column    int     // pivot column (and row) index
	Pivot     float64 // pivot value after row selection
	Tolerance float64 // effective pivot tolerance
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("linsolve: pivot %g in column %d is within tolerance %g: singular system",
		e.Pivot, e.Column, e.Tolerance)
}

// Unwrap exposes ErrSingularSystem to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingularSystem }

// DiagonalError reports the first row with a zero diagonal entry.
type DiagonalError struct {
	Row int
}

func (e *DiagonalError) Error() string {
	return fmt.Sprintf("linsolve: diagonal entry a[%d][%d] is zero", e.Row, e.Row)
}

// Unwrap exposes ErrZeroDiagonal to errors.Is.
func (e *DiagonalError) Unwrap() error { return ErrZeroDiagonal }

// ConvergenceError is returned when an iterative solver gives up.
// X holds the last finite iterate; it is NOT a solution and is provided only
// for inspection.
type ConvergenceError struct {
	Method     Method
	Iterations int       // iterations performed
	X          []float64 // last finite iterate (caller-owned copy)
	Delta      float64   // ‖x_k − x_{k−1}‖∞ of the last completed sweep
	Residual   float64   // ‖A·x − b‖∞ of X
	Diverged   bool      // an iterate overflowed to ±Inf/NaN and iteration stopped early
}

func (e *ConvergenceError) Error() string {
	if e.Diverged {
		return fmt.Sprintf("linsolve: %s diverged after %d iterations (non-finite iterate)",
			e.Method, e.Iterations)
	}

	return fmt.Sprintf("linsolve: %s did not converge in %d iterations (delta %g, residual %g)",
		e.Method, e.Iterations, e.Delta, e.Residual)
}

// Unwrap exposes ErrNonConvergence to errors.Is.
func (e *ConvergenceError) Unwrap() error { return ErrNonConvergence }

// solverErrorf wraps err with an operation tag, preserving it via %w.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
