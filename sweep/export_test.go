// SPDX-License-Identifier: MIT

package sweep

// PlotSeries exposes the per-method point sets of WritePlot to tests.
var PlotSeries = plotSeries
