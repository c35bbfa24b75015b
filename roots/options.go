// SPDX-License-Identifier: MIT

package roots

import "math"

const (
	// DefaultTolerance is the stopping tolerance ε of every method.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the number of iterations of every method.
	DefaultMaxIterations = 1000
)

const (
	panicToleranceInvalid     = "roots: WithTolerance: eps must be finite and > 0"
	panicMaxIterationsInvalid = "roots: WithMaxIterations: n must be > 0"
	panicDerivativeNil        = "roots: WithDerivative: df must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol     float64 // >0
	maxIter int     // >0
	df      Func    // analytic derivative for Newton; nil ⇒ finite difference
}

// WithTolerance sets ε. Panics unless eps is finite and > 0.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithMaxIterations sets the iteration cap. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithDerivative supplies f' for Newton instead of the finite-difference estimate.
// Panics if df is nil.
func WithDerivative(df Func) Option {
	if df == nil {
		panic(panicDerivativeNil)
	}

	return func(o *Options) { o.df = df }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, set := range user {
		set(&o)
	}

	return o
}
