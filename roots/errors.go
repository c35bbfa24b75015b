// SPDX-License-Identifier: MIT
// Package roots: sentinel error set. Messages carry the "roots: " prefix;
// callers match with errors.Is.

package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned when a or b is not finite or a >= b.
	ErrInvalidInterval = errors.New("roots: invalid interval")

	// ErrInvalidStep is returned by Bracket for a non-positive step or step count.
	ErrInvalidStep = errors.New("roots: invalid scan step")

	// ErrNoBracket is returned by Bracket when no sign change is found within maxSteps.
	ErrNoBracket = errors.New("roots: no sign change found")

	// ErrNoSignChange is returned when f(a) and f(b) have the same sign.
	ErrNoSignChange = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative is returned by Newton when the tangent is horizontal.
	ErrZeroDerivative = errors.New("roots: zero derivative")

	// ErrNotContraction is returned by FixedPoint when |g'| >= 1 at an endpoint.
	ErrNotContraction = errors.New("roots: iteration function is not a contraction")

	// ErrNonConvergence is returned when the iteration cap is reached or an
	// iterate becomes non-finite.
	ErrNonConvergence = errors.New("roots: iteration did not converge")

	// ErrNaNInf is returned when f or g yields NaN or ±Inf where a finite value is required.
	ErrNaNInf = errors.New("roots: NaN or Inf encountered")
)

// rootsErrorf wraps err with an operation tag, preserving it via %w.
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
