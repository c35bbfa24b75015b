// Package roots locates a simple real root of a scalar function f(x) = 0.
//
// The package provides:
//
//   - Bracket: a step scan from a starting point that returns the first
//     interval [a, b] of width step with f(a)·f(b) ≤ 0.
//   - Bisection: interval halving until |b − a| < ε.
//   - Newton: tangent iteration from the interval midpoint until two
//     successive iterates differ by less than ε. The derivative comes from
//     WithDerivative or from a central finite difference.
//   - FixedPoint: simple iteration x ← g(x) for an equivalent form x = g(x),
//     after checking that |g'| < 1 at both ends of the interval.
//
// All methods are deterministic, allocation-free and bounded by
// WithMaxIterations (DefaultMaxIterations = 1000). Failures are reported with
// sentinel errors (see errors.go) matched through errors.Is.
//
// Example:
//
//	f := func(x float64) float64 { return x*x*x + 0.2*x*x + 0.5*x - 1.2 }
//	a, b, _ := roots.Bracket(f, 0, 0.01, 1000)
//	x, _ := roots.Bisection(f, a, b, roots.WithTolerance(1e-6))
package roots
