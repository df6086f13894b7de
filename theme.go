package qcplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Size is the size of a figure in inches.
type Size struct {
	Width, Height float64
}

// Lengths returns the size as vg lengths.
func (s Size) Lengths() (w, h vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

// Theme collects the fixed sizes and colors of the charts.
type Theme struct {
	// Figure size presets.
	Grid     Size // grid of weather signals, model and regression panels
	Entropy  Size
	MISmall  Size // mutual information with up to MIThreshold scores
	MILarge  Size
	Solution Size
	Features Size

	// MIThreshold is the number of scores above which MILarge is used.
	MIThreshold int

	// SuptitleSize is the font size of the figure title in points.
	SuptitleSize float64

	// LineColor is used for series without an explicit color.
	LineColor color.Color
	// BarColor fills the bars of bar charts.
	BarColor color.Color
	// Unselected and Selected are the two colors of the feature grid.
	Unselected, Selected color.Color
	// GridColor strokes the cell boundaries of the feature grid.
	GridColor color.Color

	GlyphRadius vg.Length
	LineWidth   vg.Length

	// Series styles of the weather panels: a plain signal, the observed
	// output and the model next to it, and the summary panel.
	Signal, Observed, Model, Summary Style
}

var DefaultTheme = Theme{
	Grid:         Size{21, 9},
	Entropy:      Size{5, 4},
	MISmall:      Size{4, 4},
	MILarge:      Size{8, 5},
	Solution:     Size{4, 4},
	Features:     Size{6, 6},
	MIThreshold:  5,
	SuptitleSize: 15,
	LineColor:    color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	BarColor:     color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	Unselected:   BuiltinColors["white"],
	Selected:     BuiltinColors["red"],
	GridColor:    BuiltinColors["black"],
	GlyphRadius:  vg.Points(3),
	LineWidth:    vg.Points(1.5),
	Signal:       String2Style("-"),
	Observed:     String2Style("ro"),
	Model:        String2Style("bv"),
	Summary:      String2Style("r"),
}
