package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	scores := map[string]float64{
		"air_temp": 0.12,
		"humidity": 0.87,
		"pressure": 0.45,
		"wind":     0.45,
	}
	for i := 0; i < 10; i++ {
		ranked := Rank(scores)
		require.Len(t, ranked, 4)
		assert.Equal(t, []Score{
			{"humidity", 0.87},
			{"pressure", 0.45},
			{"wind", 0.45},
			{"air_temp", 0.12},
		}, ranked)
	}
	assert.Empty(t, Rank(nil))
}

func TestSelected(t *testing.T) {
	tests := []struct {
		assignment map[string]int
		want       []string
	}{
		{map[string]int{"A": 1, "B": 0}, []string{"A"}},
		{map[string]int{"A": 0, "B": 1}, []string{"B"}},
		{map[string]int{"c": 1, "a": 1, "b": 1}, []string{"a", "b", "c"}},
		{map[string]int{"a": 0, "b": -1, "c": 2}, nil},
	}
	for i, tc := range tests {
		assert.Equal(t, tc.want, Selected(tc.assignment), "case %d", i)
	}
}

func TestLinspace(t *testing.T) {
	x := Linspace(-math.Pi, math.Pi, 5)
	require.Len(t, x, 5)
	assert.InDelta(t, -math.Pi, x[0], 1e-12)
	assert.InDelta(t, 0, x[2], 1e-12)
	assert.InDelta(t, math.Pi, x[4], 1e-12)

	assert.Empty(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{-1}, Linspace(-1, 1, 1))
}
