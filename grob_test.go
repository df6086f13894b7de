package qcplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeomBarConstruct(t *testing.T) {
	bars := GeomBar{Values: []float64{-2, 1.5, 0}}.Construct(DefaultTheme)
	require.Len(t, bars.rects, 3)
	assert.Equal(t, grobRect{xmin: -0.4, xmax: 0.4, ymin: -2, ymax: 0}, bars.rects[0])
	assert.InDelta(t, 0.6, bars.rects[1].xmin, 1e-12)
	assert.InDelta(t, 1.4, bars.rects[1].xmax, 1e-12)
	assert.Equal(t, 0.0, bars.rects[1].ymin)
	assert.Equal(t, 1.5, bars.rects[1].ymax)
	assert.Equal(t, 0.0, bars.rects[2].ymin)
	assert.Equal(t, 0.0, bars.rects[2].ymax)
	assert.Equal(t, DefaultTheme.BarColor, bars.fill)

	xmin, xmax, ymin, ymax := bars.DataRange()
	assert.InDelta(t, -0.4, xmin, 1e-12)
	assert.InDelta(t, 2.4, xmax, 1e-12)
	assert.Equal(t, -2.0, ymin)
	assert.Equal(t, 1.5, ymax)

	wide := GeomBar{Values: []float64{1}, Width: 1}.Construct(DefaultTheme)
	assert.Equal(t, -0.5, wide.rects[0].xmin)
}

func TestCellBoundaries(t *testing.T) {
	assert.Equal(t, []float64{-0.5, 0.5, 1.5}, CellBoundaries(2))
	assert.Equal(t, []float64{-0.5}, CellBoundaries(0))
}

func TestGeomTilePlotters(t *testing.T) {
	tile := GeomTile{
		Grid:       SelectionGrid{Cells: [][]int{{1, 0}, {1, 1}}, Features: 2},
		Boundaries: true,
	}
	plotters, err := tile.Plotters(DefaultTheme)
	require.NoError(t, err)
	require.Len(t, plotters, 2)
	grid, ok := plotters[1].(GrobGrid)
	require.True(t, ok)
	assert.Equal(t, []float64{-0.5, 0.5, 1.5}, grid.Xs)
	assert.Equal(t, DefaultTheme.GridColor, grid.Line.Color)

	_, err = GeomTile{Grid: SelectionGrid{}}.Plotters(DefaultTheme)
	assert.ErrorIs(t, err, ErrShape)
}
