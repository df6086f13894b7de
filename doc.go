// Package qcplot draws the charts of the weather feature-selection
// demonstration: weather signals, two-signal models, linear regressions,
// Shannon entropy, mutual information, solver solutions and the best
// feature selection.
//
// # Figures
//
// All charts render into a Figure which the caller creates once and
// passes explicitly:
//
//	fig := qcplot.NewFigure(qcplot.DefaultTheme)
//	if err := qcplot.PlotWeatherSignals(fig, signals); err != nil {
//		...
//	}
//	err := fig.Save("signals.png")
//
// Each chart function resets the figure first, so a figure always holds
// exactly one chart. Nothing is drawn until WriteTo or Save lays the
// panels out and renders them with gonum.org/v1/plot.
//
// # Data Representation: Tables
//
// Signals are passed as a Table, an ordered list of named float64
// columns of equal length:
//
//	t, err := qcplot.NewTable(
//		qcplot.Column{Name: "air_temp", Values: []float64{...}},
//		qcplot.Column{Name: "cod_weather", Values: []float64{...}},
//	)
//
// Columns produced by model fitting carry a compound header: the two
// Signals a model was fitted on or the correlation coefficient R of a
// regression. Charts address columns by position, so column order
// matters.
//
// # Format Strings
//
// Series are styled with short format strings: a color letter (b g r c
// m y k w), a marker (o v ^ s D d + x * .) and a line (- -- : -.), e.g.
// "ro" for red dots or "b" for a blue line. Formats containing a comma
// list color, point shape and line type names instead, e.g.
// "cyan,solid-diamond,dotted". See String2Style. The styles of the
// weather panels are part of the Theme.
package qcplot
