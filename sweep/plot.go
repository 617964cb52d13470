// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot geometry.
const (
	plotWidth  = 16 * vg.Centimeter
	plotHeight = 10 * vg.Centimeter
)

// Sentinel errors of WritePlot.
var (
	// ErrNoRecords indicates a plot request without data.
	ErrNoRecords = errors.New("sweep: no records to plot")

	// ErrBadCount indicates a record whose count cannot sit on a log axis.
	ErrBadCount = errors.New("sweep: plotted counts must be >= 1")
)

// WritePlot renders correct digits against count, one scatter per method,
// on a logarithmic count axis, and writes it to w as PNG.
func WritePlot(w io.Writer, records []Record) error {
	names, series := plotSeries(records)
	if len(names) == 0 {
		return ErrNoRecords
	}
	lo, hi := records[0].Count, records[0].Count
	for _, r := range records {
		if r.Count < 1 {
			return fmt.Errorf("%w: %s count=%d", ErrBadCount, r.Method, r.Count)
		}
		lo, hi = min(lo, r.Count), max(hi, r.Count)
	}

	p := plot.New()
	p.Title.Text = "Correct digits per method"
	p.X.Label.Text = "iterations"
	p.Y.Label.Text = "correct digits"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, name := range names {
		s, err := plotter.NewScatter(series[i])
		if err != nil {
			return fmt.Errorf("sweep: plot %s: %w", name, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(s)
		p.Legend.Add(name, s)
	}

	// one octave of margin keeps a single count off the axis ends
	p.X.Min, p.X.Max = float64(lo)/2, float64(hi)*2

	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}

// plotSeries groups records by method in order of first appearance.
// Each point is (Count, Correct).
func plotSeries(records []Record) ([]string, []plotter.XYs) {
	var (
		names  []string
		series []plotter.XYs
	)
	for _, r := range records {
		m := string(r.Method)
		i := slices.Index(names, m)
		if i < 0 {
			names = append(names, m)
			series = append(series, nil)
			i = len(names) - 1
		}
		series[i] = append(series[i], plotter.XY{X: float64(r.Count), Y: float64(r.Correct)})
	}

	return names, series
}
