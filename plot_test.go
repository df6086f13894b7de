package qcplot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureGrid(t *testing.T) {
	fig := NewFigure(DefaultTheme)
	rows, cols := fig.Grid()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)

	fig.AddPanel(0, 0, 1)
	fig.AddPanel(0, 1, 1)
	fig.AddPanel(0, 2, 1)
	wide := fig.AddPanel(1, 0, 3)
	rows, cols = fig.Grid()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, wide.Span)

	assert.Equal(t, 1, fig.AddPanel(2, 0, 0).Span)

	fig.Title = "something"
	fig.Reset(Size{3, 2})
	assert.Empty(t, fig.Panels)
	assert.Empty(t, fig.Title)
	assert.Equal(t, Size{3, 2}, fig.Size)
}

func TestPanelPlot(t *testing.T) {
	panel := &Panel{Title: "Shannon Entropy", Legend: true}
	panel.X.Label = "Bins"
	panel.Add("Maximum", GeomLine{X: []float64{1, 2}, Y: []float64{3, 4}, Style: String2Style("ro")})
	panel.Add("Vals", GeomLine{X: []float64{1, 2}, Y: []float64{1, 1}, Style: String2Style("y")})

	pl, err := panel.Plot(DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, "Shannon Entropy", pl.Title.Text)
	assert.Equal(t, "Bins", pl.X.Label.Text)
	assert.Equal(t, 1.0, pl.X.Min)
	assert.Equal(t, 4.0, pl.Y.Max)

	panel.Add("broken", GeomLine{X: []float64{1, 2}, Y: []float64{1}})
	_, err = panel.Plot(DefaultTheme)
	assert.ErrorIs(t, err, ErrShape)
}

func TestWriteTo(t *testing.T) {
	fig := NewFigure(DefaultTheme)
	require.NoError(t, PlotWeatherSignals(fig, weatherTable(25)))

	var buf bytes.Buffer
	n, err := fig.WriteTo(&buf, "png")
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 21*96, cfg.Width)
	assert.Equal(t, 9*96, cfg.Height)

	buf.Reset()
	_, err = fig.WriteTo(&buf, "svg")
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "<svg"))

	_, err = fig.WriteTo(&buf, "bmp")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestWriteToEmptyFigure(t *testing.T) {
	fig := NewFigure(DefaultTheme)
	fig.Reset(Size{1, 1})
	var buf bytes.Buffer
	_, err := fig.WriteTo(&buf, "png")
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fig := NewFigure(DefaultTheme)
	require.NoError(t, PlotSolutions(fig, SampleSet{
		{Assignment: map[string]int{"A": 1, "B": 0}, Energy: -2},
	}))

	path := filepath.Join(dir, "solutions.PNG")
	require.NoError(t, fig.Save(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 4*96, cfg.Width)

	assert.ErrorIs(t, fig.Save(filepath.Join(dir, "solutions")), ErrFormat)
	assert.ErrorIs(t, fig.Save(filepath.Join(dir, "solutions.gif")), ErrFormat)
	assert.NoFileExists(t, filepath.Join(dir, "solutions.gif"))

	fig.Panels[0].Add("broken", GeomLine{X: []float64{1}, Y: nil})
	assert.ErrorIs(t, fig.Save(filepath.Join(dir, "broken.svg")), ErrShape)
	assert.NoFileExists(t, filepath.Join(dir, "broken.svg"))
}
