package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vdobler/qcplot"
	"github.com/vdobler/qcplot/input"
)

const (
	observedFlagName  = "observed"
	referenceFlagName = "reference"
)

func (a *app) weatherCmd() *cli.Command {
	return &cli.Command{
		Name:      "weather",
		Usage:     "Plot the weather input signals and the weather output",
		UsageText: "qcplot weather --in signals.csv --out weather.png",
		Flags:     []cli.Flag{inFlag("Weather table, CSV or YAML"), outFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			t, err := a.openTable(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotWeatherSignals(fig, t)
			})
		},
	}
}

func (a *app) modelCmd() *cli.Command {
	return &cli.Command{
		Name:      "model",
		Usage:     "Compare two-signal models to the observed weather output",
		UsageText: "qcplot model --in model.yaml --observed signals.csv",
		Flags: []cli.Flag{
			inFlag("Model table in YAML, each column naming its two signals"),
			&cli.StringFlag{
				Name:      observedFlagName,
				Usage:     "Table with the observed " + qcplot.ObservedColumn + " column",
				Required:  true,
				TakesFile: true,
			},
			outFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			model, err := a.openTable(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			observed, err := a.openTable(cmd.String(observedFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotTwoVarModel(fig, model, observed)
			})
		},
	}
}

func (a *app) regressCmd() *cli.Command {
	return &cli.Command{
		Name:      "regress",
		Usage:     "Compare single-signal linear regressions to the reference output",
		UsageText: "qcplot regress --in regression.yaml --reference signals.csv",
		Flags: []cli.Flag{
			inFlag("Regression table in YAML, each column with its correlation coefficient"),
			&cli.StringFlag{
				Name:      referenceFlagName,
				Usage:     "Table with the reference " + qcplot.ObservedColumn + " column",
				Required:  true,
				TakesFile: true,
			},
			outFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			t, err := a.openTable(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			reference, err := a.openTable(cmd.String(referenceFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotLinRegress(fig, t, reference)
			})
		},
	}
}

func (a *app) entropyCmd() *cli.Command {
	return &cli.Command{
		Name:      "entropy",
		Usage:     "Plot Shannon entropy estimates against the number of bins",
		UsageText: "qcplot entropy --in entropy.csv",
		Flags:     []cli.Flag{inFlag("Table with Bins, Maximum, Uniform, Exp and Vals columns"), outFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			t, err := a.openTable(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotShannonEntropy(fig, t)
			})
		},
	}
}

func (a *app) miCmd() *cli.Command {
	return &cli.Command{
		Name:      "mi",
		Usage:     "Plot mutual information scores, highest first",
		UsageText: "qcplot mi --in scores.yaml",
		Flags:     []cli.Flag{inFlag("YAML mapping from signal to score"), outFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			scores, err := input.OpenScores(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotMutualInformation(fig, scores)
			})
		},
	}
}

func (a *app) solutionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "solutions",
		Usage:     "Plot the energy of each solver sample",
		UsageText: "qcplot solutions --in samples.yaml",
		Flags:     []cli.Flag{inFlag("YAML list of samples with their energy"), outFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			set, err := input.OpenSamples(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotSolutions(fig, set)
			})
		},
	}
}

func (a *app) featuresCmd() *cli.Command {
	return &cli.Command{
		Name:      "features",
		Usage:     "Plot the selected features for each number of features considered",
		UsageText: "qcplot features --in selection.yaml",
		Flags:     []cli.Flag{inFlag("YAML with features and the selected matrix"), outFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			sel, err := input.OpenSelection(cmd.String(inFlagName))
			if err != nil {
				return err
			}
			return a.render(cmd.String(outFlagName), cmd.Name, func(fig *qcplot.Figure) error {
				return qcplot.PlotFeatures(fig, sel.Features, sel.Selected)
			})
		},
	}
}
