// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"
	"slices"
)

// Operation tags for error wrapping.
const (
	opLagrange   = "Lagrange"
	opDivided    = "DividedDifferences"
	opNewNewton  = "NewNewton"
	opErrorBound = "ErrorBound"
)

// validateNodes checks lengths, finiteness and distinct abscissas.
// Sequence: length → count → finite → distinct.
func validateNodes(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return ErrTooFewPoints
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return fmt.Errorf("node %d: %w", i, ErrNaNInf)
		}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return fmt.Errorf("x=%g: %w", sorted[i], ErrDuplicateNode)
		}
	}

	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
