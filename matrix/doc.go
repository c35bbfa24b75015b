// Package matrix offers the dense containers shared by the numeric kernels.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface over a 2-D float64 grid.
//   - Dense, a row-major implementation with a flat backing slice, plus
//     row-level primitives (RowView, SwapRows) used by elimination.
//   - Central validators (ValidateSystem and friends) returning sentinel
//     errors that callers match with errors.Is.
//   - MatVec, Residual, ResidualNorm and a condition estimate (Cond).
//
// Matrices are meant for small dense systems; there is no sparse storage.
//
// See the examples in this package and in linsolve for usage patterns.
package matrix
