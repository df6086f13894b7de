// Package input reads the outputs of the external collaborators (weather
// loader, model fitting, entropy estimation, mutual information scoring,
// the solver and the feature selection) from CSV and YAML files.
package input

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/qcplot"
)

// ErrInput is returned for malformed input files.
var ErrInput = errors.New("input: malformed")

// ReadCSV reads a table with a header line. All columns must be numeric.
func ReadCSV(r io.Reader) (*qcplot.Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("reading csv: %w", df.Err)
	}

	names := df.Names()
	columns := make([]qcplot.Column, len(names))
	for i, name := range names {
		values := df.Col(name).Float()
		for row, v := range values {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("column %q row %d: not a number: %w", name, row+1, ErrInput)
			}
		}
		columns[i] = qcplot.Column{Name: name, Values: values}
	}
	return qcplot.NewTable(columns...)
}

type yamlColumn struct {
	Name    string    `yaml:"name"`
	Signals []string  `yaml:"signals,omitempty"`
	R       float64   `yaml:"r,omitempty"`
	Values  []float64 `yaml:"values"`
}

type yamlTable struct {
	Columns []yamlColumn `yaml:"columns"`
}

// ReadTable reads a YAML table. Unlike CSV a YAML table can carry the
// compound headers of model and regression columns:
//
//	columns:
//	  - name: air_temp+humidity
//	    signals: [air_temp, humidity]
//	    r: 0.83
//	    values: [0.1, 0.4, 0.2]
func ReadTable(r io.Reader) (*qcplot.Table, error) {
	var yt yamlTable
	if err := decode(r, &yt); err != nil {
		return nil, err
	}
	columns := make([]qcplot.Column, len(yt.Columns))
	for i, c := range yt.Columns {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d has no name: %w", i, ErrInput)
		}
		columns[i] = qcplot.Column{Name: c.Name, Signals: c.Signals, R: c.R, Values: c.Values}
	}
	return qcplot.NewTable(columns...)
}

// ReadScores reads a mapping from label to score.
func ReadScores(r io.Reader) (map[string]float64, error) {
	scores := make(map[string]float64)
	if err := decode(r, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

type yamlSample struct {
	Sample map[string]int `yaml:"sample"`
	Energy float64        `yaml:"energy"`
}

// ReadSamples reads a list of solver samples:
//
//	- sample: {A: 1, B: 0}
//	  energy: -2.0
func ReadSamples(r io.Reader) (qcplot.SampleSet, error) {
	var ys []yamlSample
	if err := decode(r, &ys); err != nil {
		return nil, err
	}
	set := make(qcplot.SampleSet, len(ys))
	for i, s := range ys {
		set[i] = qcplot.Sample{Assignment: s.Sample, Energy: s.Energy}
	}
	return set, nil
}

// Selection is the outcome of a feature selection sweep.
type Selection struct {
	Features []string `yaml:"features"`
	Selected [][]int  `yaml:"selected"`
}

// ReadSelection reads a Selection.
func ReadSelection(r io.Reader) (Selection, error) {
	var sel Selection
	if err := decode(r, &sel); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document: %w", ErrInput)
		}
		return fmt.Errorf("%w: %v", ErrInput, err)
	}
	return nil
}

// OpenTable reads the table in path. Files ending in .csv are read with
// ReadCSV, .yaml and .yml files with ReadTable.
func OpenTable(path string) (*qcplot.Table, error) {
	var read func(io.Reader) (*qcplot.Table, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		read = ReadCSV
	case ".yaml", ".yml":
		read = ReadTable
	default:
		return nil, fmt.Errorf("%s: unknown table format: %w", path, ErrInput)
	}

	var t *qcplot.Table
	err := withFile(path, func(r io.Reader) (err error) {
		t, err = read(r)
		return err
	})
	return t, err
}

// OpenScores reads the score mapping in path.
func OpenScores(path string) (scores map[string]float64, err error) {
	err = withFile(path, func(r io.Reader) (err error) {
		scores, err = ReadScores(r)
		return err
	})
	return scores, err
}

// OpenSamples reads the sample set in path.
func OpenSamples(path string) (set qcplot.SampleSet, err error) {
	err = withFile(path, func(r io.Reader) (err error) {
		set, err = ReadSamples(r)
		return err
	})
	return set, err
}

// OpenSelection reads the feature selection in path.
func OpenSelection(path string) (sel Selection, err error) {
	err = withFile(path, func(r io.Reader) (err error) {
		sel, err = ReadSelection(r)
		return err
	})
	return sel, err
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
