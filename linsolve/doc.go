// Package linsolve solves small dense linear systems A·x = b.
//
// Three independent, stateless methods are provided:
//
//	Gauss   elimination with partial pivoting and back substitution.
//	        O(n³) time, O(n²) memory for a private augmented copy.
//	        A pivot within the pivot tolerance (DefaultPivotTolerance = 1e-9)
//	        fails with ErrSingularSystem as *PivotError.
//	Jacobi  simultaneous update: every component of the next iterate is
//	        computed from the previous iterate only (two buffers).
//	        O(k·n²) time for k sweeps.
//	Seidel  Gauss–Seidel: in-place update in ascending row order, each row
//	        using the freshest values. Usually needs fewer sweeps than Jacobi.
//
// Solve dispatches on a Method value; ParseMethod maps CLI names to methods.
//
// # Iterative options
//
//	WithTolerance(ε)        // default 1e-4
//	WithMaxIterations(n)    // default 1000
//	WithCriterion(c)        // CriterionResidual (default), CriterionStep, CriterionRelative
//	WithInitialGuess(x0)    // default zero vector
//	WithDominanceCheck()    // fail fast with ErrPossibleDivergence
//	WithObserver(fn)        // called after every sweep
//
// Iterative solvers reject an exactly zero diagonal up front (ErrZeroDiagonal,
// as *DiagonalError) and report a reached cap as *ConvergenceError, which
// unwraps to ErrNonConvergence and carries the last iterate for inspection.
//
// # Errors
//
// All errors match with errors.Is against the sentinels in errors.go, or
// against matrix.ErrNilMatrix / matrix.ErrNaNInf for malformed input.
// ErrDimensionMismatch is reported for non-square A or len(b) != n.
//
// # Concurrency
//
// Inputs are never mutated and no state survives a call, so solvers may run
// concurrently on shared inputs.
package linsolve
