// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.r, tc.c)
	}
}

func TestNewDense_ZeroFilled(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		opts    []matrix.Option
		wantErr error
	}{
		{"empty", nil, nil, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, nil, matrix.ErrRaggedRows},
		{"nan", [][]float64{{1, math.NaN()}}, nil, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(-1)}}, nil, matrix.ErrNaNInf},
		{"inf allowed", [][]float64{{math.Inf(1)}}, []matrix.Option{matrix.WithNoValidateNaNInf()}, nil},
		{"ok", [][]float64{{1, 2}, {3, 4}}, nil, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewFromRows(tc.rows, tc.opts...)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestNewFromRows_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustDense(t, rows)
	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestDense_SetNumericPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense(t, [][]float64{{0}})
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewFromRows([][]float64{{0}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	// Clone keeps the policy.
	require.ErrorIs(t, strict.Clone().Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestDense_RowViewAliasesStorage(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.RowView(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = -3
	v, _ := m.At(1, 0)
	require.Equal(t, -3.0, v)

	_, err = m.RowView(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SwapRows(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m.ToRows())
	require.NoError(t, m.SwapRows(1, 1))
	require.Equal(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m.ToRows())
	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	m, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m.ToRows())

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
