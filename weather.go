package qcplot

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/vdobler/qcplot/stat"
)

// ObservedColumn is the column of a comparison table drawn as the
// observed series next to each model column.
const ObservedColumn = "cod_weather"

// SubPlot draws small panels in one row. Panel i is titled titles[i] and
// plots column i of y against x.
//
// If cmp is not nil each panel overlays the observed column of cmp
// (Theme.Observed, red dots by default) and the model column
// (Theme.Model, blue triangles) with a legend. If
// summary is set a wide panel below the row plots the final column of
// y, titled with that column's name.
func SubPlot(fig *Figure, size Size, small int, summary bool, x []float64, titles []string, y, cmp *Table) error {
	fig.Reset(size)
	slog.Debug("sub plot", "panels", small, "summary", summary,
		"rows", y.Rows(), "columns", y.Width(), "comparison", cmp != nil)

	switch {
	case small < 0 || small > y.Width():
		return fig.fail(fmt.Errorf("%d panels for %d columns: %w", small, y.Width(), ErrShape))
	case len(titles) < small:
		return fig.fail(fmt.Errorf("%d titles for %d panels: %w", len(titles), small, ErrShape))
	case len(x) != y.Rows():
		return fig.fail(fmt.Errorf("%d x values for %d rows: %w", len(x), y.Rows(), ErrShape))
	case summary && small >= y.Width():
		return fig.fail(fmt.Errorf("summary panel needs a column after the %d panels, table has %d: %w",
			small, y.Width(), ErrShape))
	}

	var observed []float64
	if cmp != nil {
		col, err := cmp.Col(ObservedColumn)
		if err != nil {
			return fig.fail(fmt.Errorf("comparison table: %w", err))
		}
		if cmp.Rows() != y.Rows() {
			return fig.fail(fmt.Errorf("comparison table has %d rows, want %d: %w",
				cmp.Rows(), y.Rows(), ErrShape))
		}
		observed = col.Values
	}

	for i := 0; i < small; i++ {
		panel := fig.AddPanel(0, i, 1)
		panel.Title = titles[i]
		col := y.Columns[i]
		if cmp == nil {
			panel.Add(col.Name, GeomLine{X: x, Y: col.Values, Style: fig.Theme.Signal})
			continue
		}
		panel.Add(ObservedColumn, GeomLine{X: x, Y: observed, Style: fig.Theme.Observed})
		panel.Add("model", GeomLine{X: x, Y: col.Values, Style: fig.Theme.Model})
		panel.Legend = true
	}

	if summary {
		// The title comes from the data, not from titles.
		last := y.Columns[y.Width()-1]
		panel := fig.AddPanel(1, 0, small)
		panel.Title = last.Name
		panel.Add(last.Name, GeomLine{X: x, Y: last.Values, Style: fig.Theme.Summary})
	}
	return nil
}

// symmetric returns n evenly spaced values over [-pi, pi].
func symmetric(n int) []float64 {
	return stat.Linspace(-math.Pi, math.Pi, n)
}

// PlotWeatherSignals draws the first nine signals of t in small panels and
// the final column, the weather output, in a wide panel below.
func PlotWeatherSignals(fig *Figure, t *Table) error {
	err := SubPlot(fig, fig.Theme.Grid, 9, true, symmetric(t.Rows()), t.Names(), t, nil)
	if err != nil {
		return fmt.Errorf("weather signals: %w", err)
	}
	fig.Title = "Weather System Inputs and Output"
	return nil
}

// ModelTitles returns "Modeling a and b" for the two signals of each
// column of model.
func ModelTitles(model *Table) ([]string, error) {
	titles := make([]string, model.Width())
	for i, c := range model.Columns {
		if len(c.Signals) < 2 {
			return nil, fmt.Errorf("model column %q names %d signals, want 2: %w",
				c.Name, len(c.Signals), ErrShape)
		}
		titles[i] = fmt.Sprintf("Modeling %s and %s", c.Signals[0], c.Signals[1])
	}
	return titles, nil
}

// PlotTwoVarModel compares the first seven two-signal models to the
// observed weather output.
func PlotTwoVarModel(fig *Figure, model, observed *Table) error {
	titles, err := ModelTitles(model)
	if err != nil {
		fig.Reset(fig.Theme.Grid)
		return fmt.Errorf("two-signal model: %w", err)
	}
	err = SubPlot(fig, fig.Theme.Grid, 7, false, symmetric(model.Rows()), titles, model, observed)
	if err != nil {
		return fmt.Errorf("two-signal model: %w", err)
	}
	fig.Title = "Weather Output Versus Two-Signal Model"
	return nil
}

// RegressionTitles returns "name correlation coefficient: R" for each
// column of t.
func RegressionTitles(t *Table) []string {
	titles := make([]string, t.Width())
	for i, c := range t.Columns {
		titles[i] = fmt.Sprintf("%s correlation coefficient: %.2f", c.Name, c.R)
	}
	return titles
}

// PlotLinRegress compares the first seven single-signal linear
// regressions to the reference output.
func PlotLinRegress(fig *Figure, t, reference *Table) error {
	err := SubPlot(fig, fig.Theme.Grid, 7, false, symmetric(t.Rows()), RegressionTitles(t), t, reference)
	if err != nil {
		return fmt.Errorf("linear regression: %w", err)
	}
	fig.Title = "Weather Problem: Linear Regression"
	return nil
}
