package output

import (
	"errors"
	"fmt"
	"math"
)

// MillionScale converts dollars to $MM.
const MillionScale = 1e6

// HistogramBin is one equal-width bin of a Histogram. Edges are in the
// histogram's display unit (values divided by Scale).
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram is an equal-width binning of a value set.
type Histogram struct {
	Scale float64        `json:"scale"`
	Min   float64        `json:"min"`
	Max   float64        `json:"max"`
	Width float64        `json:"width"`
	Bins  []HistogramBin `json:"bins"`
}

// BuildHistogram bins values divided by scale into bins equal-width bins over
// [min, max]. Every bin is half open except the last, which is closed. A
// degenerate range (all values equal) is widened by half a display unit on
// each side.
func BuildHistogram(values []float64, bins int, scale float64) (*Histogram, error) {
	if len(values) == 0 {
		return nil, errors.New("cannot build a histogram of no values")
	}
	if bins < 1 {
		return nil, fmt.Errorf("bins must be at least 1, got %d", bins)
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("scale must be positive and finite, got %g", scale)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		s := v / scale
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("non-finite value %g", v)
		}
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	if hi == lo {
		lo -= 0.5
		hi += 0.5
	}

	h := &Histogram{
		Scale: scale,
		Min:   lo,
		Max:   hi,
		Width: (hi - lo) / float64(bins),
		Bins:  make([]HistogramBin, bins),
	}
	for i := range h.Bins {
		h.Bins[i].Lower = lo + float64(i)*h.Width
		h.Bins[i].Upper = lo + float64(i+1)*h.Width
	}
	h.Bins[bins-1].Upper = hi

	for _, v := range values {
		h.Bins[h.BinIndex(v)].Count++
	}
	return h, nil
}

// BinIndex returns the bin holding the unscaled value v. Values outside the
// range land in the nearest edge bin.
func (h *Histogram) BinIndex(v float64) int {
	idx := int(math.Floor((v/h.Scale - h.Min) / h.Width))
	if idx < 0 {
		return 0
	}
	if idx >= len(h.Bins) {
		return len(h.Bins) - 1
	}
	return idx
}

// MaxCount returns the largest bin count.
func (h *Histogram) MaxCount() int {
	m := 0
	for _, b := range h.Bins {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}

// Total returns the number of binned values.
func (h *Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}
