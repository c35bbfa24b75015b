// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlekseyKhaleev/Comp-Math/interp"
)

func newInterpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interp FILE",
		Short: "Evaluate the interpolating polynomial of a table",
		Long: "interp reads a YAML file with keys x and y (the table) and at (query points)\n" +
			"and evaluates the Lagrange and/or Newton form at every query point.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInterp(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().String(flagMethod, methodAll, "lagrange, newton or all")

	return cmd
}

func (a *app) runInterp(w io.Writer, path string) error {
	tf, err := loadTable(path)
	if err != nil {
		return err
	}
	method := strings.ToLower(strings.TrimSpace(a.v.GetString(flagMethod)))
	useLagrange := method == methodAll || method == "lagrange"
	useNewton := method == methodAll || method == "newton"
	if !useLagrange && !useNewton {
		return fmt.Errorf("unknown interpolation method %q", method)
	}
	a.log.Info("interpolating", "file", path, "nodes", len(tf.X), "points", len(tf.At))

	var p *interp.Newton
	if useNewton {
		if p, err = interp.NewNewton(tf.X, tf.Y); err != nil {
			return err
		}
	}

	fmt.Fprint(w, "x")
	if useLagrange {
		fmt.Fprint(w, "\tlagrange")
	}
	if useNewton {
		fmt.Fprint(w, "\tnewton")
	}
	fmt.Fprintln(w)
	for _, x := range tf.At {
		fmt.Fprintf(w, "%.4f", x)
		if useLagrange {
			y, err := interp.Lagrange(tf.X, tf.Y, x)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\t%.6f", y)
		}
		if useNewton {
			fmt.Fprintf(w, "\t%.6f", p.Eval(x))
		}
		fmt.Fprintln(w)
	}

	return nil
}
