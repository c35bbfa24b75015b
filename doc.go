// Package compmath is a small workbench of classic numerical methods:
// direct and iterative linear solvers, root finding, quadrature and
// polynomial interpolation.
//
// What is inside?
//
//	matrix/      Matrix interface, Dense row-major storage, validators,
//	             MatVec, residual norm and condition number
//	linsolve/    Gauss elimination with partial pivoting, Jacobi and
//	             Gauss–Seidel iteration, Solve dispatcher
//	roots/       sign-change bracketing, bisection, Newton, fixed-point iteration
//	quad/        midpoint, trapezoidal and Simpson composite rules, Runge estimate
//	interp/      Lagrange form, divided differences, Newton form, error bound
//	cmd/numlab   command-line front end (YAML input, viper config, HTML charts)
//
// Every routine is a pure function of its inputs: nothing is mutated, no
// state survives a call, and failures are reported as errors matching the
// package sentinels with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.NewDense(3, 3)
//	// ... fill a ...
//	res, err := linsolve.Solve(linsolve.MethodSeidel, a, b,
//		linsolve.WithTolerance(1e-6))
//
//	go install github.com/AlekseyKhaleev/Comp-Math/cmd/numlab@latest
package compmath
