package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	prev := []Result{
		{Name: "e/f/1024", MeanNs: 100},
		{Name: "e/f/4096", MeanNs: 400},
		{Name: "e/g/1024", MeanNs: 50},
	}
	curr := []Result{
		{Name: "e/f/1024", MeanNs: 110},
		{Name: "e/f/4096", MeanNs: 300},
		{Name: "e/h/1024", MeanNs: 75},
	}

	comps := Compare(prev, curr)
	require.Len(t, comps, 3)

	assert.Equal(t, "e/f/1024", comps[0].Name)
	assert.False(t, comps[0].New)
	assert.InDelta(t, 10.0, comps[0].DiffPct, 0.001)

	assert.Equal(t, "e/f/4096", comps[1].Name)
	assert.InDelta(t, -25.0, comps[1].DiffPct, 0.001)

	assert.Equal(t, "e/h/1024", comps[2].Name)
	assert.True(t, comps[2].New)
}

func TestCompare_ZeroPrevMean(t *testing.T) {
	comps := Compare(
		[]Result{{Name: "e/f/1", MeanNs: 0}},
		[]Result{{Name: "e/f/1", MeanNs: 10}},
	)
	require.Len(t, comps, 1)
	assert.Zero(t, comps[0].DiffPct)
}

func TestCompare_Empty(t *testing.T) {
	assert.Empty(t, Compare(nil, nil))
}

func TestComparison_String(t *testing.T) {
	c := Comparison{Name: "e/f/1", DiffPct: 12.5}
	assert.Equal(t, "e/f/1: +12.50%", c.String())

	n := Comparison{Name: "e/g/1", New: true}
	assert.Equal(t, "e/g/1: new", n.String())
}
