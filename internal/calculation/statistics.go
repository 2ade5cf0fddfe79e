package calculation

import (
	"math"
	"sort"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// Summarize computes summary statistics over values without modifying it.
// Percentiles interpolate linearly between order statistics.
func Summarize(values []float64) (domain.Statistics, error) {
	if len(values) == 0 {
		return domain.Statistics{}, domain.NewDomainError("summarize", "no values to summarize")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := Mean(values)
	var varianceSum float64
	for _, v := range values {
		d := v - mean
		varianceSum += d * d
	}

	return domain.Statistics{
		Mean:   mean,
		Median: Percentile(sorted, 0.50),
		P5:     Percentile(sorted, 0.05),
		P95:    Percentile(sorted, 0.95),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: math.Sqrt(varianceSum / float64(len(values))),
	}, nil
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Percentile returns the q-quantile (0..1) of an ascending slice using linear
// interpolation at position q*(n-1).
func Percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return Clamp(sorted[lo]+(sorted[hi]-sorted[lo])*frac, sorted[lo], sorted[hi])
}
