// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/AlekseyKhaleev/Comp-Math/quad"
)

const (
	flagA      = "a"
	flagB      = "b"
	flagPanels = "n"
)

// integrand is the built-in log10(x² + 1)/x.
func integrand(x float64) float64 { return math.Log10(x*x+1) / x }

func newIntegrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate log10(x²+1)/x with the midpoint, trapezoidal and Simpson rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runIntegrate(cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Float64(flagA, 0.8, "lower limit")
	f.Float64(flagB, 1.6, "upper limit")
	f.IntSlice(flagPanels, []int{8, 20}, "panel counts; the first two give the Runge estimate")

	return cmd
}

func (a *app) runIntegrate(w io.Writer) error {
	lo, hi := a.v.GetFloat64(flagA), a.v.GetFloat64(flagB)
	ns := a.v.GetIntSlice(flagPanels)
	if len(ns) == 0 {
		return errors.New("at least one panel count is required")
	}
	a.log.Info("integrating", "a", lo, "b", hi, "n", ns)

	fmt.Fprintf(w, "∫ log10(x²+1)/x dx on [%g, %g]\n", lo, hi)
	for _, nr := range quad.Rules {
		fmt.Fprintf(w, "%s:\n", nr.Name)
		for _, n := range ns {
			v, err := nr.Rule(integrand, lo, hi, n)
			if err != nil {
				return fmt.Errorf("%s: %w", nr.Name, err)
			}
			fmt.Fprintf(w, "  n=%-4d %.8f\n", n, v)
		}
		if len(ns) >= 2 {
			_, _, est, err := quad.RungeEstimate(nr.Rule, integrand, lo, hi, ns[0], ns[1])
			if err != nil {
				return fmt.Errorf("%s: %w", nr.Name, err)
			}
			fmt.Fprintf(w, "  estimate |I(%d) − I(%d)| = %.3e\n", ns[1], ns[0], est)
		}
	}

	return nil
}
