package calculation

import (
	"fmt"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// CorrelatedGrowth derives the unclamped second period growth from the first by
// linear shrinkage toward the mode. strength 1 tracks y1 exactly, strength 0
// reverts fully to the mode.
func CorrelatedGrowth(y1, mode, strength float64) float64 {
	return mode + strength*(y1-mode)
}

// GenerateGrowth draws the first period growth rate and derives the correlated
// second period rate. Both values lie inside bounds.
func GenerateGrowth(s *Sampler, bounds domain.Bounds, correlationStrength float64) (float64, float64, error) {
	y1, err := s.SampleBounds(bounds)
	if err != nil {
		return 0, 0, fmt.Errorf("growth draw: %w", err)
	}
	y2 := Clamp(CorrelatedGrowth(y1, bounds.Mode, correlationStrength), bounds.Low, bounds.High)
	return y1, y2, nil
}
