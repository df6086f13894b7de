// Package config reads the qcplot configuration file. The file overrides
// parts of the default chart theme and the output format:
//
//	format: svg
//	suptitle_size: 18
//	mi_threshold: 8
//	sizes:
//	  grid: {width: 24, height: 10}
//	colors:
//	  bar: "#2ca02c"
//	  selected: g
//	styles:
//	  observed: "k."
//	  model: "cyan,solid-diamond,dashed"
//	line_width: 2
//
// Settings not given keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/qcplot"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "qcplot.yaml"

// DefaultFormat is used when neither the configuration nor the output
// file name selects an image format.
const DefaultFormat = "png"

// ErrConfig is returned for invalid configuration values.
var ErrConfig = errors.New("config: invalid")

var formats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Size is a figure size in inches.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Sizes overrides the figure size presets.
type Sizes struct {
	Grid     *Size `yaml:"grid"`
	Entropy  *Size `yaml:"entropy"`
	MISmall  *Size `yaml:"mi_small"`
	MILarge  *Size `yaml:"mi_large"`
	Solution *Size `yaml:"solution"`
	Features *Size `yaml:"features"`
}

// Colors are given as names, single letters or #rrggbb[aa].
type Colors struct {
	Line       string `yaml:"line"`
	Bar        string `yaml:"bar"`
	Selected   string `yaml:"selected"`
	Unselected string `yaml:"unselected"`
	Grid       string `yaml:"grid"`
}

// Styles are format strings as understood by qcplot.String2Style.
type Styles struct {
	Signal   string `yaml:"signal"`
	Observed string `yaml:"observed"`
	Model    string `yaml:"model"`
	Summary  string `yaml:"summary"`
}

// Config represents the configuration file.
type Config struct {
	Format       string  `yaml:"format"`
	SuptitleSize float64 `yaml:"suptitle_size"`
	MIThreshold  int     `yaml:"mi_threshold"`
	Sizes        Sizes   `yaml:"sizes"`
	Colors       Colors  `yaml:"colors"`
	Styles       Styles  `yaml:"styles"`
	LineWidth    float64 `yaml:"line_width"`   // points
	GlyphRadius  float64 `yaml:"glyph_radius"` // points
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{Format: DefaultFormat}
}

// Load reads the configuration file at path. An empty path yields the
// default configuration; a missing file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path, "format", c.Format)
	return c, nil
}

// LoadOptional is like Load but yields the default configuration if
// there is no file at path.
func LoadOptional(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", path)
		return Default(), nil
	}
	return c, err
}

// Read decodes and validates a configuration. Unknown keys are an error.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks c for values that cannot be used.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if !supported(c.Format) {
		return fmt.Errorf("%w: format %q, want one of %s", ErrConfig, c.Format, strings.Join(formats, ", "))
	}
	if c.SuptitleSize < 0 || c.LineWidth < 0 || c.GlyphRadius < 0 || c.MIThreshold < 0 {
		return fmt.Errorf("%w: negative size", ErrConfig)
	}
	for name, col := range map[string]string{
		"line": c.Colors.Line, "bar": c.Colors.Bar,
		"selected": c.Colors.Selected, "unselected": c.Colors.Unselected,
		"grid": c.Colors.Grid,
	} {
		if _, ok := qcplot.ParseColor(col); col != "" && !ok {
			return fmt.Errorf("%w: color %s is %q", ErrConfig, name, col)
		}
	}
	for name, format := range map[string]string{
		"signal": c.Styles.Signal, "observed": c.Styles.Observed,
		"model": c.Styles.Model, "summary": c.Styles.Summary,
	} {
		if _, ok := qcplot.ParseStyle(format); format != "" && !ok {
			return fmt.Errorf("%w: style %s is %q", ErrConfig, name, format)
		}
	}
	for name, s := range map[string]*Size{
		"grid": c.Sizes.Grid, "entropy": c.Sizes.Entropy,
		"mi_small": c.Sizes.MISmall, "mi_large": c.Sizes.MILarge,
		"solution": c.Sizes.Solution, "features": c.Sizes.Features,
	} {
		if s != nil && (s.Width <= 0 || s.Height <= 0) {
			return fmt.Errorf("%w: size %s is %gx%g", ErrConfig, name, s.Width, s.Height)
		}
	}
	return nil
}

func supported(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

// Theme returns base with the settings of c applied.
func (c *Config) Theme(base qcplot.Theme) qcplot.Theme {
	t := base
	setSize(&t.Grid, c.Sizes.Grid)
	setSize(&t.Entropy, c.Sizes.Entropy)
	setSize(&t.MISmall, c.Sizes.MISmall)
	setSize(&t.MILarge, c.Sizes.MILarge)
	setSize(&t.Solution, c.Sizes.Solution)
	setSize(&t.Features, c.Sizes.Features)

	if c.SuptitleSize > 0 {
		t.SuptitleSize = c.SuptitleSize
	}
	if c.MIThreshold > 0 {
		t.MIThreshold = c.MIThreshold
	}
	if c.LineWidth > 0 {
		t.LineWidth = vg.Points(c.LineWidth)
	}
	if c.GlyphRadius > 0 {
		t.GlyphRadius = vg.Points(c.GlyphRadius)
	}

	if c.Colors.Line != "" {
		t.LineColor = qcplot.String2Color(c.Colors.Line)
	}
	if c.Colors.Bar != "" {
		t.BarColor = qcplot.String2Color(c.Colors.Bar)
	}
	if c.Colors.Selected != "" {
		t.Selected = qcplot.String2Color(c.Colors.Selected)
	}
	if c.Colors.Unselected != "" {
		t.Unselected = qcplot.String2Color(c.Colors.Unselected)
	}
	if c.Colors.Grid != "" {
		t.GridColor = qcplot.String2Color(c.Colors.Grid)
	}

	setStyle(&t.Signal, c.Styles.Signal)
	setStyle(&t.Observed, c.Styles.Observed)
	setStyle(&t.Model, c.Styles.Model)
	setStyle(&t.Summary, c.Styles.Summary)
	return t
}

func setStyle(dst *qcplot.Style, format string) {
	if format != "" {
		*dst = qcplot.String2Style(format)
	}
}

func setSize(dst *qcplot.Size, s *Size) {
	if s != nil {
		*dst = qcplot.Size{Width: s.Width, Height: s.Height}
	}
}
