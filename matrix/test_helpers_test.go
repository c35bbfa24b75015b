// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// systemA is the 3×3 reference system used across the kernels tests.
var systemA = [][]float64{
	{3.11, -1.66, -0.6},
	{-1.65, 3.51, -0.78},
	{0.6, 0.78, -1.87},
}
