// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// Solve dispatches to Gauss, Jacobi or Seidel and returns a uniform Result.
// For MethodGauss, Iterations and Delta are zero and Residual is ‖A·x − b‖∞.
func Solve(m Method, a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	switch m {
	case MethodGauss:
		x, err := Gauss(a, b, opts...)
		if err != nil {
			return nil, err
		}
		res, err := matrix.ResidualNorm(a, x, b)
		if err != nil {
			return nil, solverErrorf(opSolve, err)
		}

		return &Result{Method: MethodGauss, X: x, Residual: res}, nil
	case MethodJacobi:
		return Jacobi(a, b, opts...)
	case MethodSeidel:
		return Seidel(a, b, opts...)
	}

	return nil, solverErrorf(opSolve, fmt.Errorf("%s: %w", m, ErrUnknownMethod))
}
