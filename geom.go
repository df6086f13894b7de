package qcplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Geom is a geometrical object, a type of visual for a layer.
type Geom interface {
	Name() string // The name of the geom.

	// Plotters constructs the gonum plotters drawing this geom.
	// Fixed aesthetics not set on the geom are taken from theme.
	Plotters(theme Theme) ([]plot.Plotter, error)
}

// -------------------------------------------------------------------------
// Geom Line

// GeomLine draws a series of (X,Y) points. Depending on Style the points
// are connected by a line, drawn as glyphs, or both.
type GeomLine struct {
	X, Y  []float64
	Style Style
}

var _ Geom = GeomLine{}

func (l GeomLine) Name() string { return "GeomLine" }

// XYs returns the points of l.
func (l GeomLine) XYs() (plotter.XYs, error) {
	if len(l.X) != len(l.Y) {
		return nil, fmt.Errorf("%d x values and %d y values: %w", len(l.X), len(l.Y), ErrShape)
	}
	xys := make(plotter.XYs, len(l.X))
	for i := range xys {
		xys[i].X, xys[i].Y = l.X[i], l.Y[i]
	}
	return xys, nil
}

func (l GeomLine) Plotters(theme Theme) ([]plot.Plotter, error) {
	xys, err := l.XYs()
	if err != nil {
		return nil, err
	}
	col := l.Style.Color
	if col == nil {
		col = theme.LineColor
	}

	var plotters []plot.Plotter
	if l.Style.HasLine() {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name(), err)
		}
		line.LineStyle.Color = col
		line.LineStyle.Width = theme.LineWidth
		line.LineStyle.Dashes = l.Style.Line.Dashes()
		plotters = append(plotters, line)
	}
	if l.Style.HasGlyphs() {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name(), err)
		}
		scatter.GlyphStyle.Color = col
		scatter.GlyphStyle.Shape = l.Style.Shape.Glyph()
		scatter.GlyphStyle.Radius = theme.GlyphRadius
		if l.Style.Shape == DotPoint {
			scatter.GlyphStyle.Radius = theme.GlyphRadius / 3
		}
		plotters = append(plotters, scatter)
	}
	return plotters, nil
}

// -------------------------------------------------------------------------
// Geom Bar

// GeomBar draws one bar per value at positions 0, 1, ..., len(Values)-1.
// Bars of negative values hang down from zero.
type GeomBar struct {
	Values []float64
	Width  float64     // in data units, 0 means 0.8
	Fill   color.Color // nil: theme default
}

var _ Geom = GeomBar{}

func (b GeomBar) Name() string { return "GeomBar" }

// Construct reparametrizes the bars into rectangles.
func (b GeomBar) Construct(theme Theme) GrobRects {
	width := b.Width
	if width == 0 {
		width = 0.8
	}
	fill := b.Fill
	if fill == nil {
		fill = theme.BarColor
	}
	rects := GrobRects{fill: fill, rects: make([]grobRect, len(b.Values))}
	for i, y := range b.Values {
		x, wh := float64(i), width/2
		r := grobRect{xmin: x - wh, xmax: x + wh}
		if y > 0 {
			r.ymax = y
		} else {
			r.ymin = y
		}
		rects.rects[i] = r
	}
	return rects
}

func (b GeomBar) Plotters(theme Theme) ([]plot.Plotter, error) {
	if len(b.Values) == 0 {
		return nil, nil
	}
	return []plot.Plotter{b.Construct(theme)}, nil
}

// -------------------------------------------------------------------------
// Geom Tile

// GeomTile draws a grid of unit cells colored by their Z value. Cells
// with value v use Colors[v], cell boundaries are stroked if Boundaries
// is set.
type GeomTile struct {
	Grid       plotter.GridXYZ
	Colors     []color.Color // nil: theme Unselected and Selected
	Boundaries bool
}

var _ Geom = GeomTile{}

func (t GeomTile) Name() string { return "GeomTile" }

func (t GeomTile) Plotters(theme Theme) ([]plot.Plotter, error) {
	cols, rows := t.Grid.Dims()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%s: empty %dx%d grid: %w", t.Name(), cols, rows, ErrShape)
	}
	colors := t.Colors
	if colors == nil {
		colors = []color.Color{theme.Unselected, theme.Selected}
	}
	heat := plotter.NewHeatMap(t.Grid, listedPalette(colors))
	heat.Min, heat.Max = 0, float64(len(colors)-1)

	plotters := []plot.Plotter{heat}
	if t.Boundaries {
		grid := GrobGrid{
			Xs:   CellBoundaries(cols),
			Ys:   CellBoundaries(rows),
			Line: draw.LineStyle{Color: theme.GridColor, Width: theme.LineWidth / 2},
		}
		plotters = append(plotters, grid)
	}
	return plotters, nil
}

// listedPalette is a fixed list of colors.
type listedPalette []color.Color

func (p listedPalette) Colors() []color.Color { return p }

// -------------------------------------------------------------------------
// Selection grid

// SelectionGrid adapts a feature selection outcome to plotter.GridXYZ.
// Cells[k][f] is 1 if feature f is selected when k+1 features are
// considered. Row k=0 is placed at the top, so grid row r holds Cells
// row len(Cells)-1-r.
type SelectionGrid struct {
	Cells    [][]int
	Features int
}

var _ plotter.GridXYZ = SelectionGrid{}

func (g SelectionGrid) Dims() (c, r int) { return g.Features, len(g.Cells) }

// Z is 1 for selected and 0 for all other cells.
func (g SelectionGrid) Z(c, r int) float64 {
	if g.Selected(len(g.Cells)-1-r, c) {
		return 1
	}
	return 0
}

func (g SelectionGrid) X(c int) float64 { return float64(c) }
func (g SelectionGrid) Y(r int) float64 { return float64(r) }

func (g SelectionGrid) Min() float64 { return 0 }
func (g SelectionGrid) Max() float64 { return 1 }

// Selected reports whether feature f is selected in row k.
func (g SelectionGrid) Selected(k, f int) bool { return g.Cells[k][f] == 1 }
