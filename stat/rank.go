// Package stat provides the small data transformations needed before
// charting: ranking scores, extracting selected variables and spacing axes.
package stat

import (
	"sort"

	"github.com/aclements/go-moremath/vec"
)

// Score is one labelled value of a score mapping.
type Score struct {
	Label string
	Value float64
}

// Rank orders scores by value, highest first. Equal values are ordered
// by label so the result does not depend on map iteration order.
func Rank(scores map[string]float64) []Score {
	ranked := make([]Score, 0, len(scores))
	for l, v := range scores {
		ranked = append(ranked, Score{Label: l, Value: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Label < ranked[j].Label
	})
	return ranked
}

// Selected returns the names of all variables with indicator 1 in
// ascending order.
func Selected(assignment map[string]int) []string {
	var names []string
	for name, v := range assignment {
		if v == 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return vec.Linspace(lo, hi, n)
}
