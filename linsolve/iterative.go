// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// system is the private, read-only snapshot an iterative solver works on.
type system struct {
	n    int
	rows [][]float64 // copy of A, row-major
	b    []float64   // copy of b
}

// sweepFunc performs one iteration and returns the previous and current
// iterates. Both slices stay valid until the next call.
type sweepFunc func() (prev, cur []float64)

// prepare validates the input and builds the snapshot and the starting vector.
//
// Sequence: ValidateSystem → initial guess → zero diagonal → dominance (opt-in).
func prepare(a matrix.Matrix, b []float64, o Options) (*system, []float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, nil, err
	}
	n := a.Rows()

	s := &system{n: n, rows: make([][]float64, n), b: make([]float64, n)}
	copy(s.b, b)
	var i, j int
	var err error
	if d, ok := a.(*matrix.Dense); ok {
		s.rows = d.ToRows()
	} else {
		for i = 0; i < n; i++ {
			s.rows[i] = make([]float64, n)
			for j = 0; j < n; j++ {
				if s.rows[i][j], err = a.At(i, j); err != nil {
					return nil, nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	x := make([]float64, n)
	if o.x0 != nil {
		if err = matrix.ValidateVecLen(o.x0, n); err != nil {
			return nil, nil, fmt.Errorf("initial guess: %w", err)
		}
		if err = matrix.ValidateFiniteVec(o.x0); err != nil {
			return nil, nil, fmt.Errorf("initial guess: %w", err)
		}
		copy(x, o.x0)
	}

	for i = 0; i < n; i++ {
		if s.rows[i][i] == 0 {
			return nil, nil, &DiagonalError{Row: i}
		}
	}
	if o.checkDominance {
		if row := s.firstNonDominantRow(); row >= 0 {
			return nil, nil, fmt.Errorf("row %d: %w", row, ErrPossibleDivergence)
		}
	}

	return s, x, nil
}

// update returns (b[i] − Σ_{j≠i} a[i][j]·x[j]) / a[i][i].
func (s *system) update(i int, x []float64) float64 {
	row := s.rows[i]
	sum := s.b[i]
	for j := 0; j < i; j++ {
		sum -= row[j] * x[j]
	}
	for j := i + 1; j < s.n; j++ {
		sum -= row[j] * x[j]
	}

	return sum / row[i]
}

// residualNorm returns ‖A·x − b‖∞.
func (s *system) residualNorm(x []float64) float64 {
	var norm float64
	for i, row := range s.rows {
		if r := math.Abs(floats.Dot(row, x) - s.b[i]); r > norm || math.IsNaN(r) {
			norm = r
		}
	}

	return norm
}

// firstNonDominantRow returns the first row i with |a_ii| ≤ Σ_{j≠i}|a_ij|, or -1.
func (s *system) firstNonDominantRow() int {
	for i, row := range s.rows {
		var off float64
		for j, v := range row {
			if j != i {
				off += math.Abs(v)
			}
		}
		if math.Abs(row[i]) <= off {
			return i
		}
	}

	return -1
}

// iterate drives sweep until the criterion holds or the cap is reached.
//
// Behavior highlights:
//   - A non-finite iterate stops the loop with a Diverged ConvergenceError
//     that carries the last finite iterate; it is never returned as success.
//   - The observer sees every completed sweep, including the converged one.
//
// Complexity:
//   - O(maxIter · n²) time, O(n) extra space.
func iterate(method Method, s *system, o Options, sweep sweepFunc) (*Result, error) {
	var (
		prev, cur       []float64
		delta, residual float64
	)
	for k := 1; k <= o.maxIter; k++ {
		prev, cur = sweep()
		if !allFinite(cur) {
			return nil, &ConvergenceError{
				Method:     method,
				Iterations: k,
				X:          clone(prev),
				Delta:      delta,
				Residual:   s.residualNorm(prev),
				Diverged:   true,
			}
		}
		delta = floats.Distance(prev, cur, math.Inf(1))
		residual = s.residualNorm(cur)
		if o.observer != nil {
			o.observer(Iterate{Method: method, K: k, X: clone(cur), Delta: delta, Residual: residual})
		}
		if converged(o, prev, cur, delta, residual) {
			return &Result{
				Method:     method,
				X:          clone(cur),
				Iterations: k,
				Delta:      delta,
				Residual:   residual,
			}, nil
		}
	}

	return nil, &ConvergenceError{
		Method:     method,
		Iterations: o.maxIter,
		X:          clone(cur),
		Delta:      delta,
		Residual:   residual,
	}
}

// converged evaluates the configured stopping test.
func converged(o Options, prev, cur []float64, delta, residual float64) bool {
	switch o.criterion {
	case CriterionStep:
		return delta <= o.tol
	case CriterionRelative:
		for i := range cur {
			if math.Abs(cur[i]-prev[i]) > relativeFloor+o.tol*math.Abs(cur[i]) {
				return false
			}
		}

		return true
	default:
		return residual <= o.tol
	}
}

// IsDiagonallyDominant reports whether |a_ii| > Σ_{j≠i}|a_ij| holds for every row.
// Strict row dominance is sufficient (not necessary) for Jacobi and Seidel to converge.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch, matrix.ErrInvalidDimensions.
// Complexity: O(n²).
func IsDiagonallyDominant(a matrix.Matrix) (bool, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return false, err
	}
	if a.Rows() <= 0 {
		return false, matrix.ErrInvalidDimensions
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return false, err
	}
	n := a.Rows()
	var i, j int
	var v, diag, off float64
	var err error
	for i = 0; i < n; i++ {
		off = 0
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return false, err
			}
			if i == j {
				diag = math.Abs(v)
			} else {
				off += math.Abs(v)
			}
		}
		if diag <= off {
			return false, nil
		}
	}

	return true, nil
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
