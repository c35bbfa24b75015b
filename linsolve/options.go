// SPDX-License-Identifier: MIT

// Package linsolve: functional configuration for the solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options that a solver does not use are ignored (e.g. pivot tolerance in Jacobi).
package linsolve

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence tolerance ε of Jacobi and Seidel.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the number of sweeps of Jacobi and Seidel.
	DefaultMaxIterations = 1000

	// DefaultPivotTolerance is the magnitude at or below which a Gauss pivot
	// is treated as zero.
	DefaultPivotTolerance = 1e-9

	// DefaultCriterion is the stopping test of Jacobi and Seidel.
	DefaultCriterion = CriterionResidual

	// relativeFloor is the absolute floor of CriterionRelative.
	relativeFloor = 1e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid      = "linsolve: WithTolerance: eps must be finite and > 0"
	panicMaxIterationsInvalid  = "linsolve: WithMaxIterations: n must be > 0"
	panicPivotToleranceInvalid = "linsolve: WithPivotTolerance: tol must be finite and >= 0"
	panicCriterionInvalid      = "linsolve: WithCriterion: unknown criterion"
	panicObserverNil           = "linsolve: WithObserver: fn must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tol            float64       // >0; DefaultTolerance
	maxIter        int           // >0; DefaultMaxIterations
	pivotTol       float64       // >=0; DefaultPivotTolerance
	criterion      Criterion     // DefaultCriterion
	checkDominance bool          // fail fast when not diagonally dominant
	x0             []float64     // initial guess; nil ⇒ zero vector
	observer       func(Iterate) // optional per-sweep hook
}

// WithTolerance sets the convergence tolerance ε. Panics unless eps is finite and > 0.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithMaxIterations sets the sweep cap. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithPivotTolerance sets the Gauss pivot tolerance.
// tol = 0 detects exactly zero pivots only. Panics unless tol is finite and ≥ 0.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithCriterion selects the stopping test. Panics on an unknown value.
func WithCriterion(c Criterion) Option {
	if !c.valid() {
		panic(panicCriterionInvalid)
	}

	return func(o *Options) { o.criterion = c }
}

// WithDominanceCheck makes Jacobi and Seidel fail fast with
// ErrPossibleDivergence when A is not strictly row diagonally dominant.
func WithDominanceCheck() Option {
	return func(o *Options) { o.checkDominance = true }
}

// WithInitialGuess replaces the zero starting vector. The slice is copied;
// its length is validated against the system at solve time. A nil slice
// restores the zero vector.
func WithInitialGuess(x0 []float64) Option {
	if x0 == nil {
		return func(o *Options) { o.x0 = nil }
	}
	cp := make([]float64, len(x0))
	copy(cp, x0)

	return func(o *Options) { o.x0 = cp }
}

// WithObserver installs a hook called after every sweep of Jacobi and Seidel.
// The Iterate passed in owns a fresh copy of X. Panics if fn is nil.
func WithObserver(fn func(Iterate)) Option {
	if fn == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = fn }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; Complexity O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		maxIter:   DefaultMaxIterations,
		pivotTol:  DefaultPivotTolerance,
		criterion: DefaultCriterion,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
