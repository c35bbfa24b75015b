// SPDX-License-Identifier: MIT

package quad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/AlekseyKhaleev/Comp-Math/quad"
)

// integrand is log10(x² + 1)/x on [0.8, 1.6].
func integrand(x float64) float64 { return math.Log10(x*x+1) / x }

const (
	lo, hi = 0.8, 1.6
	exact  = 0.2539702731612287
)

func TestRules_ReferenceValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule quad.Rule
		n    int
		want float64
	}{
		{"midpoint 8", quad.Midpoint, 8, 0.2540391518670631},
		{"midpoint 20", quad.Midpoint, 20, 0.25398129652973983},
		{"trapezoidal 8", quad.Trapezoidal, 8, 0.25383249805248165},
		{"trapezoidal 20", quad.Trapezoidal, 20, 0.2539482259745291},
		{"simpson 8", quad.Simpson, 8, 0.25397017628242474},
		{"simpson 20", quad.Simpson, 20, 0.2539702707526665},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.rule(integrand, lo, hi, tc.n)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-14)
		})
	}
}

// TestRules_MatchGonum cross-checks against gonum's sample-based rules.
func TestRules_MatchGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 8, 20, 64} {
		xs := make([]float64, n+1)
		floats.Span(xs, lo, hi)
		ys := make([]float64, n+1)
		for i, x := range xs {
			ys[i] = integrand(x)
		}

		trap, err := quad.Trapezoidal(integrand, lo, hi, n)
		require.NoError(t, err)
		require.InDelta(t, integrate.Trapezoidal(xs, ys), trap, 1e-13, "n=%d", n)

		simp, err := quad.Simpson(integrand, lo, hi, n)
		require.NoError(t, err)
		require.InDelta(t, integrate.Simpsons(xs, ys), simp, 1e-13, "n=%d", n)
	}
}

// TestRules_Order checks the error ordering expected from the rule orders.
func TestRules_Order(t *testing.T) {
	t.Parallel()

	for _, nr := range quad.Rules {
		coarse, err := nr.Rule(integrand, lo, hi, 8)
		require.NoError(t, err)
		fine, err := nr.Rule(integrand, lo, hi, 20)
		require.NoError(t, err)
		require.Less(t, math.Abs(fine-exact), math.Abs(coarse-exact), nr.Name)
	}

	simp, _ := quad.Simpson(integrand, lo, hi, 20)
	trap, _ := quad.Trapezoidal(integrand, lo, hi, 20)
	mid, _ := quad.Midpoint(integrand, lo, hi, 20)
	require.Less(t, math.Abs(simp-exact), math.Abs(mid-exact))
	require.Less(t, math.Abs(mid-exact), math.Abs(trap-exact))
}

// TestRules_ExactOnPolynomials pins the degree of exactness.
func TestRules_ExactOnPolynomials(t *testing.T) {
	t.Parallel()

	line := func(x float64) float64 { return 3*x + 1 }
	cubic := func(x float64) float64 { return x * x * x }

	got, err := quad.Midpoint(line, 0, 2, 1)
	require.NoError(t, err)
	require.InDelta(t, 8.0, got, 1e-15)
	got, err = quad.Trapezoidal(line, 0, 2, 3)
	require.NoError(t, err)
	require.InDelta(t, 8.0, got, 1e-14)
	got, err = quad.Simpson(cubic, 0, 2, 2)
	require.NoError(t, err)
	require.InDelta(t, 4.0, got, 1e-14)
}

func TestRungeEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule quad.Rule
		est  float64
	}{
		{"midpoint", quad.Midpoint, 5.785533732327597e-05},
		{"trapezoidal", quad.Trapezoidal, 0.0001157279220474483},
		{"simpson", quad.Simpson, 9.447024174047414e-08},
	}
	for _, tc := range tests {
		coarse, fine, est, err := quad.RungeEstimate(tc.rule, integrand, lo, hi, 8, 20)
		require.NoError(t, err, tc.name)
		require.InDelta(t, tc.est, est, 1e-13, tc.name)
		require.Equal(t, math.Abs(fine-coarse), est)
	}

	_, _, _, err := quad.RungeEstimate(quad.Simpson, integrand, lo, hi, 8, 21)
	require.ErrorIs(t, err, quad.ErrOddPanels)
	_, _, _, err = quad.RungeEstimate(nil, integrand, lo, hi, 8, 20)
	require.ErrorIs(t, err, quad.ErrNilFunc)
}

func TestValidation(t *testing.T) {
	t.Parallel()

	for _, nr := range quad.Rules {
		_, err := nr.Rule(integrand, lo, hi, 0)
		require.ErrorIs(t, err, quad.ErrInvalidPanels, nr.Name)
		_, err = nr.Rule(integrand, hi, lo, 8)
		require.ErrorIs(t, err, quad.ErrInvalidInterval, nr.Name)
		_, err = nr.Rule(integrand, lo, math.Inf(1), 8)
		require.ErrorIs(t, err, quad.ErrInvalidInterval, nr.Name)
		_, err = nr.Rule(nil, lo, hi, 8)
		require.ErrorIs(t, err, quad.ErrNilFunc, nr.Name)
		// log10(x²+1)/x is 0/0 at x = 0.
		_, err = nr.Rule(integrand, 0, 1, 2)
		if nr.Name == "midpoint" {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, quad.ErrNaNInf, nr.Name)
		}
	}

	_, err := quad.Simpson(integrand, lo, hi, 7)
	require.ErrorIs(t, err, quad.ErrOddPanels)
}
