// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/AlekseyKhaleev/Comp-Math/linsolve"
	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// GaussSuite exercises Gauss elimination with partial pivoting.
type GaussSuite struct {
	suite.Suite
}

// TestReferenceSystem checks the solution against known values and gonum's LU solve.
func (s *GaussSuite) TestReferenceSystem() {
	x, err := linsolve.Gauss(mustDense(s.T(), refA), refB)
	require.NoError(s.T(), err)
	require.True(s.T(), floats.EqualApprox(refX, x, 1e-12), "got %v", x)

	flat := make([]float64, 0, 9)
	for _, row := range refA {
		flat = append(flat, row...)
	}
	var want mat.VecDense
	require.NoError(s.T(), want.SolveVec(mat.NewDense(3, 3, flat), mat.NewVecDense(3, append([]float64(nil), refB...))))
	require.True(s.T(), floats.EqualApprox(want.RawVector().Data, x, 1e-12))

	res, err := matrix.ResidualNorm(mustDense(s.T(), refA), x, refB)
	require.NoError(s.T(), err)
	require.Less(s.T(), res, 1e-12)
}

// TestInterfacePathMatchesDense ensures the At-based copy gives bitwise equal results.
func (s *GaussSuite) TestInterfacePathMatchesDense() {
	a := mustDense(s.T(), refA)
	fast, err := linsolve.Gauss(a, refB)
	require.NoError(s.T(), err)
	slow, err := linsolve.Gauss(hide{a}, refB)
	require.NoError(s.T(), err)
	require.Equal(s.T(), fast, slow)
}

// TestZeroLeadingPivotIsSwapped verifies that pivoting handles a zero a[0][0].
func (s *GaussSuite) TestZeroLeadingPivotIsSwapped() {
	x, err := linsolve.Gauss(mustDense(s.T(), [][]float64{{0, 1}, {1, 0}}), []float64{2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{3, 2}, x)
}

// TestSingular reports the column where elimination stopped.
func (s *GaussSuite) TestSingular() {
	tests := []struct {
		name   string
		a      [][]float64
		column int
	}{
		{"repeated row", [][]float64{{1, 2, 3}, {1, 2, 3}, {4, 5, 6}}, 2},
		{"zero row", [][]float64{{1, 2}, {0, 0}}, 1},
		{"zero column", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			b := make([]float64, len(tc.a))
			_, err := linsolve.Gauss(mustDense(s.T(), tc.a), b)
			require.ErrorIs(s.T(), err, linsolve.ErrSingularSystem)

			var pe *linsolve.PivotError
			require.True(s.T(), errors.As(err, &pe))
			require.Equal(s.T(), tc.column, pe.Column)
			require.Equal(s.T(), linsolve.DefaultPivotTolerance, pe.Tolerance)
		})
	}
}

// TestPivotTolerance distinguishes near-singular from exactly singular pivots.
func (s *GaussSuite) TestPivotTolerance() {
	a := mustDense(s.T(), [][]float64{{1, 1}, {1, 1 + 1e-12}})
	b := []float64{2, 2}

	_, err := linsolve.Gauss(a, b)
	require.ErrorIs(s.T(), err, linsolve.ErrSingularSystem)

	_, err = linsolve.Gauss(a, b, linsolve.WithPivotTolerance(0))
	require.NoError(s.T(), err)

	_, err = linsolve.Gauss(mustDense(s.T(), [][]float64{{1, 2}, {2, 4}}), b, linsolve.WithPivotTolerance(0))
	require.ErrorIs(s.T(), err, linsolve.ErrSingularSystem)
}

// TestInputsNotMutated checks that A and b are left untouched.
func (s *GaussSuite) TestInputsNotMutated() {
	a := mustDense(s.T(), [][]float64{{0, 1}, {1, 0}})
	b := []float64{2, 3}
	_, err := linsolve.Gauss(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]float64{{0, 1}, {1, 0}}, a.ToRows())
	require.Equal(s.T(), []float64{2, 3}, b)
}

// TestOneByOne covers the smallest system.
func (s *GaussSuite) TestOneByOne() {
	x, err := linsolve.Gauss(mustDense(s.T(), [][]float64{{4}}), []float64{2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0.5}, x)
}

// TestValidation maps malformed input to sentinels.
func (s *GaussSuite) TestValidation() {
	_, err := linsolve.Gauss(nil, []float64{1})
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)

	_, err = linsolve.Gauss(mustDense(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}}), []float64{1, 2})
	require.ErrorIs(s.T(), err, linsolve.ErrDimensionMismatch)

	_, err = linsolve.Gauss(mustDense(s.T(), refA), []float64{1, 2})
	require.ErrorIs(s.T(), err, linsolve.ErrDimensionMismatch)
}

// TestOverflow rejects finite input whose elimination leaves the float64 range.
func (s *GaussSuite) TestOverflow() {
	big := mustDense(s.T(), [][]float64{{1e308, 1e308}, {1e308, -1e308}})
	x, err := linsolve.Gauss(big, []float64{1e308, -1e308})
	require.ErrorIs(s.T(), err, matrix.ErrNaNInf)
	require.Nil(s.T(), x)

	// The pivot passes a zero tolerance, but b[0]/a[0][0] overflows.
	tiny := mustDense(s.T(), [][]float64{{1e-300, 0}, {0, 1}})
	x, err = linsolve.Gauss(tiny, []float64{1e10, 1}, linsolve.WithPivotTolerance(0))
	require.ErrorIs(s.T(), err, matrix.ErrNaNInf)
	require.False(s.T(), errors.Is(err, linsolve.ErrSingularSystem))
	require.Nil(s.T(), x)
}

func TestGaussSuite(t *testing.T) {
	suite.Run(t, new(GaussSuite))
}
