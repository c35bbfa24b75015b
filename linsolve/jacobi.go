// SPDX-License-Identifier: MIT

package linsolve

import "github.com/AlekseyKhaleev/Comp-Math/matrix"

// Jacobi solves A·x = b by Jacobi (simultaneous) iteration.
//
// Implementation:
//   - Stage 1: validate; snapshot A and b; reject zero diagonals (and, with
//     WithDominanceCheck, non-dominant matrices).
//   - Stage 2: starting from the zero vector (or WithInitialGuess), compute
//     next[i] = (b[i] − Σ_{j≠i} a[i][j]·cur[j]) / a[i][i] for every row,
//     reading only the previous iterate, then swap the two buffers.
//   - Stage 3: stop when the criterion holds (default: ‖A·x − b‖∞ ≤ ε).
//     WithCriterion(CriterionRelative) instead compares successive iterates
//     element-wise, |next[i] − x[i]| ≤ 1e-8 + ε·|next[i]|, the classic
//     "all close" test of hand-written Jacobi loops.
//
// Returns:
//   - *Result with X, Iterations, Delta and Residual.
//
// Errors:
//   - ErrDimensionMismatch, matrix.ErrNilMatrix, matrix.ErrNaNInf.
//   - *DiagonalError (ErrZeroDiagonal); ErrPossibleDivergence (opt-in).
//   - *ConvergenceError (ErrNonConvergence) with the last iterate.
//
// Complexity:
//   - Time O(k·n²) for k sweeps, Space O(n²) for the snapshot.
//
// Notes:
//   - Convergence is guaranteed for strictly diagonally dominant A; otherwise
//     the cap bounds the work and non-convergence is reported.
func Jacobi(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	s, x, err := prepare(a, b, o)
	if err != nil {
		return nil, solverErrorf(opJacobi, err)
	}

	next := make([]float64, s.n)
	sweep := func() ([]float64, []float64) {
		for i := 0; i < s.n; i++ {
			next[i] = s.update(i, x) // x is read-only during the sweep
		}
		prev, cur := x, next
		x, next = next, x

		return prev, cur
	}

	res, err := iterate(MethodJacobi, s, o, sweep)
	if err != nil {
		return nil, solverErrorf(opJacobi, err)
	}

	return res, nil
}
