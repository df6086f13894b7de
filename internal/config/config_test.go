package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/qcplot"
)

func TestLoadDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, qcplot.DefaultTheme, c.Theme(qcplot.DefaultTheme))

	c, err = LoadOptional(missing)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOptionalInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("format: gif\n"), 0o600))
	_, err := LoadOptional(path)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qcplot.yaml")
	content := `
format: SVG
suptitle_size: 18
mi_threshold: 8
sizes:
  grid: {width: 24, height: 10}
  features: {width: 3, height: 7}
colors:
  bar: "#2ca02c"
  selected: g
styles:
  observed: "k."
  model: "cyan,solid-diamond,dashed"
line_width: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "svg", c.Format)

	theme := c.Theme(qcplot.DefaultTheme)
	assert.Equal(t, qcplot.Size{Width: 24, Height: 10}, theme.Grid)
	assert.Equal(t, qcplot.Size{Width: 3, Height: 7}, theme.Features)
	assert.Equal(t, qcplot.DefaultTheme.Entropy, theme.Entropy)
	assert.Equal(t, 18.0, theme.SuptitleSize)
	assert.Equal(t, 8, theme.MIThreshold)
	assert.Equal(t, vg.Points(2), theme.LineWidth)
	assert.Equal(t, qcplot.DefaultTheme.GlyphRadius, theme.GlyphRadius)

	assert.Equal(t, color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}, theme.BarColor)
	assert.Equal(t, qcplot.String2Color("g"), theme.Selected)
	assert.Equal(t, qcplot.DefaultTheme.LineColor, theme.LineColor)

	assert.Equal(t, qcplot.String2Style("k."), theme.Observed)
	assert.Equal(t, qcplot.Style{
		Color: qcplot.BuiltinColors["cyan"],
		Shape: qcplot.SolidDiamondPoint,
		Line:  qcplot.DashedLine,
	}, theme.Model)
	assert.Equal(t, qcplot.DefaultTheme.Summary, theme.Summary)
}

func TestReadInvalid(t *testing.T) {
	tests := map[string]string{
		"format":   "format: gif\n",
		"unknown":  "colour: red\n",
		"negative": "line_width: -1\n",
		"size":     "sizes:\n  entropy: {width: 0, height: 4}\n",
		"syntax":   "sizes: [",
		"color":    "colors: {selected: purple}\n",
		"hex":      "colors: {bar: \"#12345\"}\n",
		"style":    "styles: {model: \"b?\"}\n",
		"named":    "styles: {summary: \"red,wavy\"}\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestReadEmpty(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultFormat, c.Format)
}

func TestLoadUnreadable(t *testing.T) {
	// A directory cannot be decoded as a config file.
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
