// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/AlekseyKhaleev/Comp-Math/linsolve"
)

// trace is the per-sweep history of one iterative run.
type trace struct {
	method   linsolve.Method
	residual []float64
	delta    []float64
}

// record returns an observer that appends to t.
func (t *trace) record() func(linsolve.Iterate) {
	return func(it linsolve.Iterate) {
		t.residual = append(t.residual, it.Residual)
		t.delta = append(t.delta, it.Delta)
	}
}

// convergenceChart renders residual and step histories as an HTML page.
func convergenceChart(w io.Writer, traces []*trace) error {
	sweeps := 0
	for _, t := range traces {
		sweeps = max(sweeps, len(t.residual))
	}
	axis := make([]int, sweeps)
	for i := range axis {
		axis[i] = i + 1
	}

	residual := newLogLine("Residual ‖A·x − b‖∞", axis)
	step := newLogLine("Step ‖x_k − x_(k−1)‖∞", axis)
	for _, t := range traces {
		residual.AddSeries(t.method.String(), lineData(t.residual))
		step.AddSeries(t.method.String(), lineData(t.delta))
	}

	page := components.NewPage()
	page.SetPageTitle("numlab convergence")
	page.AddCharts(residual, step)

	return page.Render(w)
}

func newLogLine(title string, axis []int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Right: "10"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "log", Scale: opts.Bool(true)}),
	)
	line.SetXAxis(axis)

	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i] = opts.LineData{Value: v}
	}

	return items
}

// writeChart renders traces into the file at path.
func writeChart(path string, traces []*trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = convergenceChart(f, traces); err != nil {
		f.Close()

		return fmt.Errorf("render %s: %w", path, err)
	}

	return f.Close()
}
