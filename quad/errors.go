// SPDX-License-Identifier: MIT

package quad

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPanels is returned when n < 1.
	ErrInvalidPanels = errors.New("quad: number of panels must be >= 1")

	// ErrOddPanels is returned by Simpson when n is odd.
	ErrOddPanels = errors.New("quad: Simpson's rule needs an even number of panels")

	// ErrInvalidInterval is returned when a or b is not finite or a >= b.
	ErrInvalidInterval = errors.New("quad: invalid interval")

	// ErrNaNInf is returned when the integrand yields NaN or ±Inf at a sample.
	ErrNaNInf = errors.New("quad: integrand is not finite")

	// ErrNilFunc is returned for a nil integrand or rule.
	ErrNilFunc = errors.New("quad: nil function")
)

func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
