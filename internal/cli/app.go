// Package cli implements the qcplot command line application.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/vdobler/qcplot"
	"github.com/vdobler/qcplot/input"
	"github.com/vdobler/qcplot/internal/config"
	"github.com/vdobler/qcplot/internal/logging"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

const (
	configFlagName = "config"
	debugFlagName  = "debug"
	inFlagName     = "in"
	outFlagName    = "out"
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// app holds the settings shared by all commands.
type app struct {
	errWriter io.Writer
	theme     qcplot.Theme
	format    string
	debug     bool
}

func newApp(w, errWriter io.Writer) *cli.Command {
	a := &app{errWriter: errWriter, theme: qcplot.DefaultTheme, format: config.DefaultFormat}
	return &cli.Command{
		Name:            "qcplot",
		Version:         fmt.Sprintf("%s (commit: %s)", version, commit),
		Usage:           "Plot weather signals, models and feature selection results",
		HideHelpCommand: true,
		Writer:          w,
		ErrWriter:       errWriter,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlagName,
				Usage:     "Path to the YAML configuration file (optional, default: " + config.DefaultPath + " if present)",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  debugFlagName,
				Usage: "Prints verbose logs (optional, default: false)",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.weatherCmd(),
			a.modelCmd(),
			a.regressCmd(),
			a.entropyCmd(),
			a.miCmd(),
			a.solutionsCmd(),
			a.featuresCmd(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := "info"
	a.debug = cmd.Bool(debugFlagName)
	if a.debug {
		level = "debug"
	}
	slog.SetDefault(slog.New(logging.NewCLIHandler(a.errWriter, logging.ParseLogLevel(level))))

	var cfg *config.Config
	var err error
	if cmd.IsSet(configFlagName) {
		cfg, err = config.Load(cmd.String(configFlagName))
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath)
	}
	if err != nil {
		return ctx, fmt.Errorf("loading config: %w", err)
	}
	a.theme = cfg.Theme(qcplot.DefaultTheme)
	a.format = cfg.Format
	return ctx, nil
}

// render draws a fresh figure with draw and saves it to out. Without an
// output path the figure is written to name in the configured format; an
// output path without extension gets the configured format appended.
func (a *app) render(out, name string, draw func(*qcplot.Figure) error) error {
	switch {
	case out == "":
		out = name + "." + a.format
	case filepath.Ext(out) == "":
		out += "." + a.format
	}

	fig := qcplot.NewFigure(a.theme)
	if err := draw(fig); err != nil {
		return fmt.Errorf("plotting %s: %w", name, err)
	}
	if err := fig.Save(out); err != nil {
		return err
	}
	slog.Info("figure written", "path", out, "panels", len(fig.Panels))
	return nil
}

// openTable reads the table in path. With --debug the table is dumped to
// the error writer.
func (a *app) openTable(path string) (*qcplot.Table, error) {
	t, err := input.OpenTable(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("table loaded", "path", path, "rows", t.Rows(), "columns", t.Width())
	if a.debug {
		t.Print(a.errWriter)
	}
	return t, nil
}

func inFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:      inFlagName,
		Aliases:   []string{"i"},
		Usage:     usage,
		Required:  true,
		TakesFile: true,
	}
}

func outFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:      outFlagName,
		Aliases:   []string{"o"},
		Usage:     "Output image; the extension selects the format (optional, default: <command>.png)",
		TakesFile: true,
	}
}
