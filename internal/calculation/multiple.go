package calculation

import (
	"fmt"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// Growth boost limits applied to the base exit multiple
const (
	MinGrowthBoost = 0.9
	MaxGrowthBoost = 1.5
)

// GrowthBoost returns the clamped multiplier applied to the base exit multiple
// for a realized average growth relative to the expected growth.
func GrowthBoost(avgGrowth, growthMode, boostFactor float64) (float64, error) {
	if growthMode == 0 {
		return 0, domain.NewDomainError("growth boost", "growth mode must be non-zero")
	}
	raw := 1 + boostFactor*(avgGrowth-growthMode)/growthMode
	return Clamp(raw, MinGrowthBoost, MaxGrowthBoost), nil
}

// ComputeMultiple draws a base exit multiple and applies the growth boost.
// It returns both the base and the final multiple.
func ComputeMultiple(s *Sampler, exitBounds domain.Bounds, avgGrowth, growthMode, boostFactor float64) (float64, float64, error) {
	boost, err := GrowthBoost(avgGrowth, growthMode, boostFactor)
	if err != nil {
		return 0, 0, err
	}
	base, err := s.SampleBounds(exitBounds)
	if err != nil {
		return 0, 0, fmt.Errorf("exit multiple draw: %w", err)
	}
	return base, base * boost, nil
}
