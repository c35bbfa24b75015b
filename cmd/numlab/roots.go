// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlekseyKhaleev/Comp-Math/roots"
)

const (
	flagStart    = "start"
	flagStep     = "step"
	flagMaxSteps = "max-steps"
)

// cubic is the built-in equation x³ + 0.2x² + 0.5x − 1.2 = 0.
func cubic(x float64) float64 { return x*x*x + 0.2*x*x + 0.5*x - 1.2 }

// cubicIteration is the equivalent form x = ∛(1.2 − 0.2x² − 0.5x).
func cubicIteration(x float64) float64 { return math.Cbrt(1.2 - 0.2*x*x - 0.5*x) }

// rootMethods lists the root finders in output order.
var rootMethods = []string{"bisection", "newton", "iteration"}

func newRootsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Find the root of x³ + 0.2x² + 0.5x − 1.2 = 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoots(cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.String(flagMethod, methodAll, "bisection, newton, iteration or all")
	f.Float64(flagTol, roots.DefaultTolerance, "stopping tolerance")
	f.Int(flagMaxIter, roots.DefaultMaxIterations, "iteration cap")
	f.Float64(flagStart, 0, "start of the bracketing scan")
	f.Float64(flagStep, 0.01, "width of the bracketing scan step")
	f.Int(flagMaxSteps, 10000, "maximum number of scan steps")

	return cmd
}

func (a *app) runRoots(w io.Writer) error {
	name := strings.ToLower(strings.TrimSpace(a.v.GetString(flagMethod)))
	methods := rootMethods
	if name != methodAll {
		methods = []string{name}
	}
	tol, maxIter := a.v.GetFloat64(flagTol), a.v.GetInt(flagMaxIter)
	if !(tol > 0) || maxIter <= 0 {
		return fmt.Errorf("invalid settings: tol=%g max-iter=%d", tol, maxIter)
	}
	opts := []roots.Option{roots.WithTolerance(tol), roots.WithMaxIterations(maxIter)}

	lo, hi, err := roots.Bracket(cubic, a.v.GetFloat64(flagStart), a.v.GetFloat64(flagStep), a.v.GetInt(flagMaxSteps))
	if err != nil {
		return err
	}
	a.log.Info("root bracketed", "a", lo, "b", hi)
	fmt.Fprintf(w, "bracket: [%.2f, %.2f]\n", lo, hi)

	for _, m := range methods {
		var x float64
		switch m {
		case "bisection":
			x, err = roots.Bisection(cubic, lo, hi, opts...)
		case "newton":
			x, err = roots.Newton(cubic, lo, hi, opts...)
		case "iteration":
			x, err = roots.FixedPoint(cubic, cubicIteration, lo, hi, opts...)
		default:
			return fmt.Errorf("unknown root method %q", m)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		fmt.Fprintf(w, "%-9s x = %.4f  f(x) = %.2e\n", m, x, cubic(x))
	}

	return nil
}
