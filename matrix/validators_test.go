// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// TestValidateSystem checks the fixed validation sequence and its sentinels.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	square := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	rect := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	loose, err := matrix.NewFromRows([][]float64{{1, math.NaN()}, {0, 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	tests := []struct {
		name    string
		a       matrix.Matrix
		b       []float64
		wantErr error
	}{
		{"nil matrix", nil, []float64{1}, matrix.ErrNilMatrix},
		{"non-square", rect, []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"short b", square, []float64{1}, matrix.ErrDimensionMismatch},
		{"long b", square, []float64{1, 2, 3}, matrix.ErrDimensionMismatch},
		{"nil b", square, nil, matrix.ErrNilMatrix},
		{"nan in A", loose, []float64{1, 2}, matrix.ErrNaNInf},
		{"nan in A via interface", hide{loose}, []float64{1, 2}, matrix.ErrNaNInf},
		{"inf in b", square, []float64{1, math.Inf(1)}, matrix.ErrNaNInf},
		{"ok", square, []float64{1, 2}, nil},
		{"ok via interface", hide{square}, []float64{1, 2}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSystem(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, [][]float64{{1}})))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, [][]float64{{1, 2}})), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}

// TestValidateFiniteVec reports the first non-finite entry.
func TestValidateFiniteVec(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFiniteVec([]float64{0, -1, 1e300}))
	err := matrix.ValidateFiniteVec([]float64{0, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "index 1")
}
