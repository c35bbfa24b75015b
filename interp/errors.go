// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when len(xs) != len(ys).
	ErrLengthMismatch = errors.New("interp: xs and ys differ in length")

	// ErrTooFewPoints is returned when no nodes are given.
	ErrTooFewPoints = errors.New("interp: at least one node is required")

	// ErrDuplicateNode is returned when two nodes share the same x.
	ErrDuplicateNode = errors.New("interp: duplicate node")

	// ErrNaNInf is returned for NaN or ±Inf nodes, values or bounds.
	ErrNaNInf = errors.New("interp: NaN or Inf encountered")
)

func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
