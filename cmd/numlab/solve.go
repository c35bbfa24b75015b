// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlekseyKhaleev/Comp-Math/linsolve"
	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

const (
	flagMethod         = "method"
	flagTol            = "tol"
	flagMaxIter        = "max-iter"
	flagPivotTol       = "pivot-tol"
	flagCriterion      = "criterion"
	flagCheckDominance = "check-dominance"
	flagChart          = "chart"

	methodAll = "all"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve A·x = b by Gauss, Jacobi or Gauss–Seidel",
		Long: "solve reads a YAML file with keys a (rows of the square matrix) and b\n" +
			"(right-hand side) and solves the system with the selected methods.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.OutOrStdout(), args[0])
		},
	}
	f := cmd.Flags()
	f.String(flagMethod, methodAll, "gauss, jacobi, seidel or all")
	f.Float64(flagTol, linsolve.DefaultTolerance, "convergence tolerance of the iterative methods")
	f.Int(flagMaxIter, linsolve.DefaultMaxIterations, "iteration cap of the iterative methods")
	f.Float64(flagPivotTol, linsolve.DefaultPivotTolerance, "pivot magnitude treated as zero by Gauss")
	f.String(flagCriterion, linsolve.DefaultCriterion.String(), "stopping test: residual, step or relative")
	f.Bool(flagCheckDominance, false, "refuse to iterate on matrices that are not diagonally dominant")
	f.String(flagChart, "", "write an HTML convergence chart of the iterative methods to this path")

	return cmd
}

// selectMethods resolves the --method value.
func selectMethods(name string) ([]linsolve.Method, error) {
	if strings.EqualFold(strings.TrimSpace(name), methodAll) {
		return linsolve.Methods, nil
	}
	m, err := linsolve.ParseMethod(name)
	if err != nil {
		return nil, err
	}

	return []linsolve.Method{m}, nil
}

func (a *app) solveOptions() ([]linsolve.Option, error) {
	crit, err := linsolve.ParseCriterion(a.v.GetString(flagCriterion))
	if err != nil {
		return nil, err
	}
	tol, maxIter, pivotTol := a.v.GetFloat64(flagTol), a.v.GetInt(flagMaxIter), a.v.GetFloat64(flagPivotTol)
	if !(tol > 0) || maxIter <= 0 || !(pivotTol >= 0) {
		return nil, fmt.Errorf("invalid settings: tol=%g max-iter=%d pivot-tol=%g", tol, maxIter, pivotTol)
	}
	opts := []linsolve.Option{
		linsolve.WithTolerance(tol),
		linsolve.WithMaxIterations(maxIter),
		linsolve.WithPivotTolerance(pivotTol),
		linsolve.WithCriterion(crit),
	}
	if a.v.GetBool(flagCheckDominance) {
		opts = append(opts, linsolve.WithDominanceCheck())
	}

	return opts, nil
}

func (a *app) runSolve(w io.Writer, path string) error {
	methods, err := selectMethods(a.v.GetString(flagMethod))
	if err != nil {
		return err
	}
	opts, err := a.solveOptions()
	if err != nil {
		return err
	}
	sys, b, err := loadSystem(path)
	if err != nil {
		return err
	}
	a.log.Info("solving system", "file", path, "n", sys.Rows(), "methods", len(methods))

	var traces []*trace
	var failed int
	for _, m := range methods {
		t := &trace{method: m}
		runOpts := opts
		if m != linsolve.MethodGauss {
			runOpts = append(runOpts[:len(runOpts):len(runOpts)], linsolve.WithObserver(a.observe(t)))
			traces = append(traces, t)
		}
		res, err := linsolve.Solve(m, sys, b, runOpts...)
		if err != nil {
			a.log.Error("solve failed", "method", m, "err", err)
			fmt.Fprintf(w, "%s: %v\n", m, err)
			failed++

			continue
		}
		printResult(w, res)
	}

	if cond, err := matrix.Cond(sys); err == nil {
		fmt.Fprintf(w, "cond(A) = %.4g\n", cond)
	}

	if path := a.v.GetString(flagChart); path != "" && len(traces) > 0 {
		if err = writeChart(path, traces); err != nil {
			return err
		}
		a.log.Info("convergence chart written", "path", path)
	}
	if failed == len(methods) {
		return fmt.Errorf("all %d methods failed", failed)
	}

	return nil
}

// observe logs each sweep at debug level and records it into t.
func (a *app) observe(t *trace) func(linsolve.Iterate) {
	rec := t.record()

	return func(it linsolve.Iterate) {
		a.log.Debug("sweep", "method", it.Method, "k", it.K, "delta", it.Delta, "residual", it.Residual)
		rec(it)
	}
}

func printResult(w io.Writer, res *linsolve.Result) {
	parts := make([]string, len(res.X))
	for i, v := range res.X {
		parts[i] = fmt.Sprintf("x%d = %.4f", i+1, v)
	}
	fmt.Fprintf(w, "%s:\n  %s\n", res.Method, strings.Join(parts, "; "))
	if res.Method == linsolve.MethodGauss {
		fmt.Fprintf(w, "  residual = %.3g\n", res.Residual)

		return
	}
	fmt.Fprintf(w, "  iterations = %d, residual = %.3g\n", res.Iterations, res.Residual)
}
