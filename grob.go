package qcplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grobs are the graphical primitives gonum's plotter package lacks.
// They draw in data coordinates of the plot they are added to.

// -------------------------------------------------------------------------
// Grob Rect

type grobRect struct {
	xmin, ymin, xmax, ymax float64
}

// GrobRects fills axis aligned rectangles.
type GrobRects struct {
	rects []grobRect
	fill  color.Color
}

var (
	_ plot.Plotter    = GrobRects{}
	_ plot.DataRanger = GrobRects{}
)

func (r GrobRects) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, b := range r.rects {
		x0, y0 := trX(b.xmin), trY(b.ymin)
		x1, y1 := trX(b.xmax), trY(b.ymax)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(r.fill, c.ClipPolygonXY(pts))
	}
}

func (r GrobRects) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, b := range r.rects {
		xmin, xmax = math.Min(xmin, b.xmin), math.Max(xmax, b.xmax)
		ymin, ymax = math.Min(ymin, b.ymin), math.Max(ymax, b.ymax)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail draws a small filled square for the legend.
func (r GrobRects) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(r.fill, c.ClipPolygonY(pts))
}

// -------------------------------------------------------------------------
// Grob Grid

// GrobGrid strokes full width vertical lines at each of Xs and full
// height horizontal lines at each of Ys.
type GrobGrid struct {
	Xs, Ys []float64
	Line   draw.LineStyle
}

var _ plot.Plotter = GrobGrid{}

func (g GrobGrid) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, x := range g.Xs {
		if x < p.X.Min || x > p.X.Max {
			continue
		}
		c.StrokeLine2(g.Line, trX(x), c.Min.Y, trX(x), c.Max.Y)
	}
	for _, y := range g.Ys {
		if y < p.Y.Min || y > p.Y.Max {
			continue
		}
		c.StrokeLine2(g.Line, c.Min.X, trY(y), c.Max.X, trY(y))
	}
}
