// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// hide masks *matrix.Dense so solvers take their interface path.
type hide struct{ matrix.Matrix }

// Reference 3×3 system, strictly diagonally dominant by rows.
var (
	refA = [][]float64{
		{3.11, -1.66, -0.6},
		{-1.65, 3.51, -0.78},
		{0.6, 0.78, -1.87},
	}
	refB = []float64{-0.92, 2.57, 1.65}
	refX = []float64{-0.1803868048102971, 0.483249456636376, -0.7386617682940132}
)

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}
