package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistogram(t *testing.T) {
	values := []float64{0, 1e6, 2e6, 3e6, 4e6}
	h, err := BuildHistogram(values, 4, MillionScale)
	require.NoError(t, err)

	require.Len(t, h.Bins, 4)
	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 4.0, h.Max)
	assert.Equal(t, 1.0, h.Width)
	// last bin is closed, so the maximum lands in it
	assert.Equal(t, []int{1, 1, 1, 2}, counts(h))
	assert.Equal(t, 4.0, h.Bins[3].Upper)
	assert.Equal(t, len(values), h.Total())
	assert.Equal(t, 2, h.MaxCount())
}

func TestBuildHistogram_DegenerateRange(t *testing.T) {
	h, err := BuildHistogram([]float64{5e6, 5e6, 5e6}, 50, MillionScale)
	require.NoError(t, err)

	assert.InDelta(t, 4.5, h.Min, 1e-12)
	assert.InDelta(t, 5.5, h.Max, 1e-12)
	assert.Equal(t, 3, h.Total())
	assert.Equal(t, 3, h.Bins[h.BinIndex(5e6)].Count)
}

func TestBuildHistogram_Errors(t *testing.T) {
	_, err := BuildHistogram(nil, 10, 1)
	assert.Error(t, err)

	_, err = BuildHistogram([]float64{1}, 0, 1)
	assert.Error(t, err)

	_, err = BuildHistogram([]float64{1}, 10, 0)
	assert.Error(t, err)
}

func TestBinIndexClampsOutOfRange(t *testing.T) {
	h, err := BuildHistogram([]float64{10, 20}, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, h.BinIndex(-100))
	assert.Equal(t, 4, h.BinIndex(1000))
}

func counts(h *Histogram) []int {
	out := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = b.Count
	}
	return out
}
