package qcplot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrFormat is returned for unknown output formats.
var ErrFormat = errors.New("qcplot: unsupported output format")

// Figure is the drawing surface all charts render into.
//
// A figure is created once with NewFigure and reused: every chart
// function resets it before adding its panels. WriteTo and Save lay the
// panels out and draw them. A Figure must not be used concurrently.
type Figure struct {
	// Size of the whole figure.
	Size Size

	// Title is drawn centered above all panels.
	Title string

	// Panels are laid out in a grid of rows and columns.
	Panels []*Panel

	Theme Theme
}

// Panel is one sub-chart of a figure.
type Panel struct {
	Title string
	X, Y  Axis

	// Legend shows one entry per named layer.
	Legend bool

	// Row and Col are the grid position; the panel covers Span columns.
	Row, Col, Span int

	Layers []*Layer
}

// Layer is one series drawn on a panel.
type Layer struct {
	// Name is the legend entry of this layer.
	Name string
	Geom Geom
}

// NewFigure returns an empty figure using theme.
func NewFigure(theme Theme) *Figure {
	return &Figure{Theme: theme}
}

// Reset clears all panels and the title and resizes f.
func (f *Figure) Reset(size Size) {
	f.Size = size
	f.Title = ""
	f.Panels = nil
}

// fail drops a partially constructed chart.
func (f *Figure) fail(err error) error {
	f.Panels = nil
	f.Title = ""
	return err
}

// AddPanel adds an empty panel at row and col covering span columns.
func (f *Figure) AddPanel(row, col, span int) *Panel {
	if span < 1 {
		span = 1
	}
	p := &Panel{Row: row, Col: col, Span: span}
	f.Panels = append(f.Panels, p)
	return p
}

// Grid returns the number of rows and columns of the panel grid.
func (f *Figure) Grid() (rows, cols int) {
	for _, p := range f.Panels {
		if p.Row+1 > rows {
			rows = p.Row + 1
		}
		if p.Col+p.Span > cols {
			cols = p.Col + p.Span
		}
	}
	return rows, cols
}

// Add appends a named layer to p.
func (p *Panel) Add(name string, geom Geom) *Layer {
	l := &Layer{Name: name, Geom: geom}
	p.Layers = append(p.Layers, l)
	return l
}

// Plot constructs the gonum plot of p.
func (p *Panel) Plot(theme Theme) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	setupAxis(&pl.X, p.X)
	setupAxis(&pl.Y, p.Y)

	for _, layer := range p.Layers {
		plotters, err := layer.Geom.Plotters(theme)
		if err != nil {
			return nil, fmt.Errorf("panel %q layer %q: %w", p.Title, layer.Name, err)
		}
		pl.Add(plotters...)
		if !p.Legend || layer.Name == "" {
			continue
		}
		var thumbs []plot.Thumbnailer
		for _, pt := range plotters {
			if th, ok := pt.(plot.Thumbnailer); ok {
				thumbs = append(thumbs, th)
			}
		}
		pl.Legend.Add(layer.Name, thumbs...)
	}
	pl.Legend.Top = true
	return pl, nil
}

func setupAxis(axis *plot.Axis, spec Axis) {
	axis.Label.Text = spec.Label
	if spec.Ticks != nil {
		axis.Tick.Marker = plot.ConstantTicks(spec.Ticks)
	}
	if spec.Rotation != 0 {
		axis.Tick.Label.Rotation = spec.Rotation
		axis.Tick.Label.XAlign = text.XRight
		axis.Tick.Label.YAlign = text.YCenter
	}
}

// padding between panels and around the figure
var padding = vg.Points(12)

// Draw lays out the panels of f on c and draws them.
func (f *Figure) Draw(c draw.Canvas) error {
	area := c
	if f.Title != "" {
		sty := plot.New().Title.TextStyle
		sty.Font.Size = vg.Points(f.Theme.SuptitleSize)
		sty.XAlign = text.XCenter
		sty.YAlign = text.YTop
		top := c.Max.Y - padding
		c.FillText(sty, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: top}, f.Title)
		area.Max.Y = top - sty.Height(f.Title)
	}

	rows, cols := f.Grid()
	if rows == 0 {
		return nil
	}
	width := (area.Max.X - area.Min.X - vg.Length(cols+1)*padding) / vg.Length(cols)
	height := (area.Max.Y - area.Min.Y - vg.Length(rows+1)*padding) / vg.Length(rows)

	for _, p := range f.Panels {
		pl, err := p.Plot(f.Theme)
		if err != nil {
			return err
		}
		x0 := area.Min.X + padding + vg.Length(p.Col)*(width+padding)
		y1 := area.Max.Y - padding - vg.Length(p.Row)*(height+padding)
		sub := draw.Canvas{
			Canvas: c.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: x0, Y: y1 - height},
				Max: vg.Point{X: x0 + vg.Length(p.Span)*width + vg.Length(p.Span-1)*padding, Y: y1},
			},
		}
		pl.Draw(sub)
	}
	return nil
}

// render lays out and draws f on a canvas of the given format.
func (f *Figure) render(format string) (vg.CanvasWriterTo, error) {
	wd, ht := f.Size.Lengths()
	c, err := draw.NewFormattedCanvas(wd, ht, format)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrFormat, format, err)
	}
	if err := f.Draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// WriteTo renders f in the given format (png, svg, pdf, eps, jpg, tif)
// and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := f.render(format)
	if err != nil {
		return 0, err
	}
	return c.WriteTo(w)
}

// Save writes f to the named file. The format is taken from the file
// extension. The file is only created once the figure has been drawn.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("%w: no extension in %q", ErrFormat, path)
	}
	c, err := f.render(format)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	n, err := c.WriteTo(file)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	slog.Debug("figure saved", "path", path, "bytes", n, "panels", len(f.Panels))
	return nil
}
