package qcplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Axis describes the labelling of one panel axis.
type Axis struct {
	Label string

	// Ticks are fixed tick marks. Nil uses the default ticker.
	Ticks []plot.Tick

	// Rotation of the tick labels in radians.
	Rotation float64
}

// Vertical is the tick label rotation for long nominal labels.
const Vertical = math.Pi / 2

// NominalTicks places one labelled tick at each integer position
// 0, 1, ..., len(labels)-1.
func NominalTicks(labels []string) []plot.Tick {
	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

// CountTicks labels the n rows of a grid with 1..n. If top is set row 0
// is drawn at the top, i.e. at position n-1.
func CountTicks(n int, top bool) []plot.Tick {
	ticks := make([]plot.Tick, n)
	for i := range ticks {
		v := float64(i)
		if top {
			v = float64(n - 1 - i)
		}
		ticks[i] = plot.Tick{Value: v, Label: strconv.Itoa(i + 1)}
	}
	return ticks
}

// CellBoundaries returns the n+1 minor tick positions -0.5, 0.5, ...,
// n-0.5 separating n unit cells centered on 0..n-1.
func CellBoundaries(n int) []float64 {
	b := make([]float64, n+1)
	for i := range b {
		b[i] = float64(i) - 0.5
	}
	return b
}
