package qcplot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vdobler/qcplot/stat"
)

// -------------------------------------------------------------------------
// Shannon entropy

// EntropySeries are the columns drawn by PlotShannonEntropy, in legend
// order, with their format strings.
var EntropySeries = []struct{ Name, Format string }{
	{"Maximum", "ro"},
	{"Uniform", "b"},
	{"Exp", "g"},
	{"Vals", "y"},
}

// PlotShannonEntropy draws the entropy curves of t against its Bins column.
func PlotShannonEntropy(fig *Figure, t *Table) error {
	fig.Reset(fig.Theme.Entropy)

	needed := NewStringSetFrom([]string{"Bins"})
	for _, s := range EntropySeries {
		needed.Add(s.Name)
	}
	needed.Remove(NewStringSetFrom(t.Names()))
	if len(needed) > 0 {
		return fig.fail(fmt.Errorf("shannon entropy: missing %v: %w", needed, ErrColumn))
	}

	bins, _ := t.Col("Bins")
	panel := fig.AddPanel(0, 0, 1)
	panel.Title = "Shannon Entropy"
	panel.X.Label = "Bins"
	panel.Y.Label = "Entropy"
	panel.Legend = true
	for _, s := range EntropySeries {
		col, _ := t.Col(s.Name)
		panel.Add(s.Name, GeomLine{X: bins.Values, Y: col.Values, Style: String2Style(s.Format)})
	}
	return nil
}

// -------------------------------------------------------------------------
// Mutual information

// PlotMutualInformation draws one bar per score, highest first. Figures
// with more than Theme.MIThreshold scores use the large size preset.
func PlotMutualInformation(fig *Figure, scores map[string]float64) error {
	size := fig.Theme.MISmall
	if len(scores) > fig.Theme.MIThreshold {
		size = fig.Theme.MILarge
	}
	fig.Reset(size)
	if len(scores) == 0 {
		return fig.fail(fmt.Errorf("mutual information: no scores: %w", ErrShape))
	}

	ranked := stat.Rank(scores)
	labels := make([]string, len(ranked))
	values := make([]float64, len(ranked))
	for i, s := range ranked {
		labels[i], values[i] = s.Label, s.Value
	}
	slog.Debug("mutual information", "scores", len(ranked), "best", labels[0])

	panel := fig.AddPanel(0, 0, 1)
	panel.Title = "Mutual Information"
	panel.Y.Label = "MI with Variable of Interest"
	panel.X.Ticks = NominalTicks(labels)
	panel.X.Rotation = Vertical
	panel.Add("", GeomBar{Values: values})
	return nil
}

// -------------------------------------------------------------------------
// Solver solutions

// Sample is one solution returned by a solver: a binary assignment of
// the variables and its energy.
type Sample struct {
	Assignment map[string]int
	Energy     float64
}

// SampleSet is the result of a solver run in enumeration order.
type SampleSet []Sample

// FormatSelection renders a list of selected variables as ['a', 'b'].
func FormatSelection(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// PlotSolutions draws the energy of each sample in result as a bar
// labelled with the variables the sample selects.
func PlotSolutions(fig *Figure, result SampleSet) error {
	fig.Reset(fig.Theme.Solution)

	energies := make([]float64, len(result))
	labels := make([]string, len(result))
	for i, sample := range result {
		energies[i] = sample.Energy
		labels[i] = FormatSelection(stat.Selected(sample.Assignment))
	}

	panel := fig.AddPanel(0, 0, 1)
	panel.Title = "Toy Problem: Unconstrained Solution"
	panel.Y.Label = "Energy"
	panel.X.Ticks = NominalTicks(labels)
	panel.X.Rotation = Vertical
	panel.Add("", GeomBar{Values: energies})
	return nil
}

// -------------------------------------------------------------------------
// Feature selection

// PlotFeatures draws which features are selected (red) for each number
// of features considered. Row k of selected lists the outcome when k+1
// features are considered and must have one entry per feature.
func PlotFeatures(fig *Figure, features []string, selected [][]int) error {
	fig.Reset(fig.Theme.Features)
	if len(features) == 0 || len(selected) == 0 {
		return fig.fail(fmt.Errorf("feature selection: %d features, %d rows: %w",
			len(features), len(selected), ErrShape))
	}
	for k, row := range selected {
		if len(row) != len(features) {
			return fig.fail(fmt.Errorf("feature selection: row %d has %d cells for %d features: %w",
				k, len(row), len(features), ErrShape))
		}
	}

	panel := fig.AddPanel(0, 0, 1)
	panel.Title = "Best Feature Selection"
	panel.Y.Label = "Number of Selected Features"
	panel.X.Ticks = NominalTicks(features)
	panel.X.Rotation = Vertical
	panel.Y.Ticks = CountTicks(len(selected), true)
	panel.Add("", GeomTile{
		Grid:       SelectionGrid{Cells: selected, Features: len(features)},
		Boundaries: true,
	})
	return nil
}
