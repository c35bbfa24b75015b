// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"strings"
)

// Method selects one of the three solution methods.
type Method int

const (
	// MethodGauss is Gauss elimination with partial pivoting.
	MethodGauss Method = iota
	// MethodJacobi is the Jacobi (simple) iteration.
	MethodJacobi
	// MethodSeidel is the Gauss–Seidel iteration.
	MethodSeidel
)

// Methods lists every supported method in a fixed order.
var Methods = []Method{MethodGauss, MethodJacobi, MethodSeidel}

var methodNames = map[Method]string{
	MethodGauss:  "gauss",
	MethodJacobi: "jacobi",
	MethodSeidel: "seidel",
}

// String returns the lowercase method name.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a name (case-insensitive) to a Method.
// Accepted: gauss, jacobi, seidel, gauss-seidel.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gauss":
		return MethodGauss, nil
	case "jacobi":
		return MethodJacobi, nil
	case "seidel", "gauss-seidel":
		return MethodSeidel, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Criterion selects the stopping test of the iterative solvers.
type Criterion int

const (
	// CriterionResidual stops when ‖A·x − b‖∞ ≤ ε.
	CriterionResidual Criterion = iota
	// CriterionStep stops when ‖x_k − x_{k−1}‖∞ ≤ ε.
	CriterionStep
	// CriterionRelative stops when |x_k,i − x_{k−1},i| ≤ 1e-8 + ε·|x_k,i| for every i.
	CriterionRelative
)

var criterionNames = map[Criterion]string{
	CriterionResidual: "residual",
	CriterionStep:     "step",
	CriterionRelative: "relative",
}

// String returns the lowercase criterion name.
func (c Criterion) String() string {
	if s, ok := criterionNames[c]; ok {
		return s
	}

	return fmt.Sprintf("Criterion(%d)", int(c))
}

func (c Criterion) valid() bool {
	_, ok := criterionNames[c]

	return ok
}

// ParseCriterion maps a name (case-insensitive) to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "residual":
		return CriterionResidual, nil
	case "step":
		return CriterionStep, nil
	case "relative":
		return CriterionRelative, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownCriterion)
}

// Result is a successful solve.
type Result struct {
	Method     Method
	X          []float64 // solution vector (caller-owned)
	Iterations int       // sweeps performed; 0 for Gauss
	Delta      float64   // ‖x_k − x_{k−1}‖∞ of the last sweep; 0 for Gauss
	Residual   float64   // ‖A·X − b‖∞
}

// Iterate is passed to the observer after every sweep.
type Iterate struct {
	Method   Method
	K        int       // 1-based sweep number
	X        []float64 // copy of the current iterate
	Delta    float64
	Residual float64
}
