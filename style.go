package qcplot

import (
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	DotPoint
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	SolidNablaPoint
	CrossPoint
	PlusPoint
	StarPoint
)

func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(StarPoint) + 1))
	}
	switch s {
	case "dot":
		return DotPoint
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "diamond":
		return DiamondPoint
	case "delta":
		return DeltaPoint
	case "nabla":
		return NablaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "solid-diamond":
		return SolidDiamondPoint
	case "solid-delta":
		return SolidDeltaPoint
	case "solid-nabla":
		return SolidNablaPoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	case "star":
		return StarPoint
	}
	return BlankPoint
}

// Glyph returns the glyph drawer for shape or nil for BlankPoint.
func (shape PointShape) Glyph() draw.GlyphDrawer {
	switch shape {
	case DotPoint, SolidCirclePoint:
		return draw.CircleGlyph{}
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case DiamondPoint:
		return diamondGlyph{}
	case SolidDiamondPoint:
		return diamondGlyph{solid: true}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case NablaPoint:
		return nablaGlyph{}
	case SolidNablaPoint:
		return nablaGlyph{solid: true}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	case StarPoint:
		return starGlyph{}
	}
	return nil
}

// nablaGlyph is a downward pointing triangle.
type nablaGlyph struct{ solid bool }

func (g nablaGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	pts := []vg.Point{
		{X: pt.X - r, Y: pt.Y + r/2},
		{X: pt.X + r, Y: pt.Y + r/2},
		{X: pt.X, Y: pt.Y - r},
	}
	drawPolygon(c, sty, pts, g.solid)
}

type diamondGlyph struct{ solid bool }

func (g diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	pts := []vg.Point{
		{X: pt.X, Y: pt.Y + r},
		{X: pt.X + r, Y: pt.Y},
		{X: pt.X, Y: pt.Y - r},
		{X: pt.X - r, Y: pt.Y},
	}
	drawPolygon(c, sty, pts, g.solid)
}

type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
}

func drawPolygon(c *draw.Canvas, sty draw.GlyphStyle, pts []vg.Point, solid bool) {
	if solid {
		c.FillPolygon(sty.Color, pts)
		return
	}
	ls := draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)}
	c.StrokeLines(ls, append(pts, pts[0]))
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt as used by draw.LineStyle.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(4), vg.Points(2), vg.Points(1), vg.Points(2)}
	case LongdashLine:
		return []vg.Length{vg.Points(8), vg.Points(2)}
	case TwodashLine:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(2), vg.Points(2)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// shortColors are the single letter color codes of format strings.
var shortColors = map[byte]color.RGBA{
	'b': {0x00, 0x00, 0xff, 0xff},
	'g': {0x00, 0x80, 0x00, 0xff},
	'r': {0xff, 0x00, 0x00, 0xff},
	'c': {0x00, 0xbf, 0xbf, 0xff},
	'm': {0xbf, 0x00, 0xbf, 0xff},
	'y': {0xbf, 0xbf, 0x00, 0xff},
	'k': {0x00, 0x00, 0x00, 0xff},
	'w': {0xff, 0xff, 0xff, 0xff},
}

// unknownColor marks color names that could not be parsed.
var unknownColor = color.NRGBA{0xaa, 0x66, 0x77, 0x7f}

// String2Color parses a color name, a single letter color code or a hex
// value #rrggbb[aa]. Unknown colors yield a translucent pink.
func String2Color(s string) color.Color {
	if col, ok := ParseColor(s); ok {
		return col
	}
	return unknownColor
}

// ParseColor is like String2Color but reports whether s is a known color.
func ParseColor(s string) (color.Color, bool) {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 && len(s) != 9 {
			return nil, false
		}
		var v [4]uint8
		v[3] = 0xff
		for i := 0; 1+2*i < len(s); i++ {
			n, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return nil, false
			}
			v[i] = uint8(n)
		}
		return color.NRGBA{v[0], v[1], v[2], v[3]}, true
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, true
	}
	if len(s) == 1 {
		if col, ok := shortColors[s[0]]; ok {
			return col, true
		}
	}
	return nil, false
}

// -------------------------------------------------------------------------
// Format strings

// Style is the fixed look of one series.
type Style struct {
	Color color.Color // nil: theme default
	Shape PointShape
	Line  LineType
}

// HasGlyphs reports whether points are drawn.
func (s Style) HasGlyphs() bool { return s.Shape != BlankPoint }

// HasLine reports whether the points are connected.
func (s Style) HasLine() bool { return s.Line != BlankLine }

var markers = map[byte]PointShape{
	'.': DotPoint,
	'o': SolidCirclePoint,
	'v': SolidNablaPoint,
	'^': SolidDeltaPoint,
	's': SolidSquarePoint,
	'D': SolidDiamondPoint,
	'd': DiamondPoint,
	'+': PlusPoint,
	'x': CrossPoint,
	'*': StarPoint,
}

// String2Style parses a short format string like "ro" (red dots), "bv"
// (blue downward triangles) or "g--" (green dashed line). A format
// containing a comma is read in long form, a list of color, point shape
// and line type names: "cyan,solid-diamond,dotted".
//
// A format with a marker but without a line draws unconnected points,
// a format with neither draws a solid line. Unknown parts are ignored.
func String2Style(s string) Style {
	style, _ := ParseStyle(s)
	return style
}

// ParseStyle is like String2Style but reports whether every part of s
// was understood.
func ParseStyle(s string) (Style, bool) {
	var style Style
	ok := true
	if strings.Contains(s, ",") {
		for _, part := range strings.Split(s, ",") {
			ok = style.setNamed(strings.TrimSpace(part)) && ok
		}
	} else {
		ok = style.setShort(s)
	}
	if style.Line == BlankLine && style.Shape == BlankPoint {
		style.Line = SolidLine
	}
	return style, ok
}

func (style *Style) setShort(s string) bool {
	ok := true
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "--"):
			style.Line = DashedLine
			i++
		case strings.HasPrefix(s[i:], "-."):
			style.Line = DotDashLine
			i++
		case s[i] == '-':
			style.Line = SolidLine
		case s[i] == ':':
			style.Line = DottedLine
		default:
			if shape, found := markers[s[i]]; found {
				style.Shape = shape
			} else if col, found := shortColors[s[i]]; found {
				style.Color = col
			} else {
				ok = false
			}
		}
	}
	return ok
}

// setNamed applies one part of a long form format.
func (style *Style) setNamed(name string) bool {
	if _, err := strconv.Atoi(name); err == nil {
		return false
	}
	if col, ok := ParseColor(name); ok {
		style.Color = col
		return true
	}
	if shape := String2PointShape(name); shape != BlankPoint {
		style.Shape = shape
		return true
	}
	if lt := String2LineType(name); lt != BlankLine || name == "blank" {
		style.Line = lt
		return true
	}
	return false
}
