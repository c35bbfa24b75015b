// SPDX-License-Identifier: MIT

package linsolve

import "github.com/AlekseyKhaleev/Comp-Math/matrix"

// Seidel solves A·x = b by Gauss–Seidel iteration.
//
// The single iterate is updated in place, rows in ascending order, so
// x[i] = (b[i] − Σ_{j<i} a[i][j]·x[j] − Σ_{j>i} a[i][j]·x[j]) / a[i][i] uses
// the values of x[0..i-1] already computed in the same sweep. The fixed row
// order is part of the method.
//
// Options, stopping tests and errors are the same as for Jacobi.
// On diagonally dominant systems Seidel needs no more sweeps than Jacobi.
//
// Complexity: Time O(k·n²), Space O(n²).
func Seidel(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	s, x, err := prepare(a, b, o)
	if err != nil {
		return nil, solverErrorf(opSeidel, err)
	}

	prev := make([]float64, s.n)
	sweep := func() ([]float64, []float64) {
		copy(prev, x)
		for i := 0; i < s.n; i++ {
			x[i] = s.update(i, x)
		}

		return prev, x
	}

	res, err := iterate(MethodSeidel, s, o, sweep)
	if err != nil {
		return nil, solverErrorf(opSeidel, err)
	}

	return res, nil
}
