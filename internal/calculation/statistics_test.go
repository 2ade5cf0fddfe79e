package calculation

import (
	"math"
	"testing"

	"github.com/exitsim/exit-value-estimator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 3.0, Percentile(sorted, 0.5))
	assert.InDelta(t, 1.2, Percentile(sorted, 0.05), 1e-12)
	assert.InDelta(t, 4.8, Percentile(sorted, 0.95), 1e-12)
	assert.Equal(t, 1.0, Percentile(sorted, 0))
	assert.Equal(t, 5.0, Percentile(sorted, 1))
	assert.Equal(t, 0.0, Percentile(nil, 0.5))
}

func TestPercentileEvenCount(t *testing.T) {
	assert.Equal(t, 2.5, Percentile([]float64{1, 2, 3, 4}, 0.5))
}

func TestSummarize(t *testing.T) {
	values := []float64{10, 1, 7, 3, 4}
	stats, err := Summarize(values)
	require.NoError(t, err)

	assert.Equal(t, 5.0, stats.Mean)
	assert.Equal(t, 4.0, stats.Median)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 10.0, stats.Max)
	assert.InDelta(t, 1.4, stats.P5, 1e-12)
	assert.InDelta(t, 9.4, stats.P95, 1e-12)
	assert.InDelta(t, math.Sqrt(10), stats.StdDev, 1e-12)

	// input order is preserved
	assert.Equal(t, []float64{10, 1, 7, 3, 4}, values)
}

func TestSummarizeSkewedMeanAboveP95(t *testing.T) {
	values := make([]float64, 100)
	values[99] = 1_000_000
	stats, err := Summarize(values)
	require.NoError(t, err)

	assert.Greater(t, stats.Mean, stats.P95)
	assert.LessOrEqual(t, stats.P5, stats.Median)
	assert.LessOrEqual(t, stats.Median, stats.P95)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}
