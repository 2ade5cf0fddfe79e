package calculation

import (
	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// EvaluateTrial simulates one exit: two periods of correlated growth applied
// to the starting ARR, valued at a growth-adjusted exit multiple.
func EvaluateTrial(s *Sampler, cfg *domain.SimulationConfig) (domain.Trial, error) {
	y1, y2, err := GenerateGrowth(s, cfg.GrowthBounds, cfg.CorrelationStrength)
	if err != nil {
		return domain.Trial{}, err
	}

	futureARR := cfg.StartingARR * (1 + y1) * (1 + y2)
	avgGrowth := (y1 + y2) / 2

	base, final, err := ComputeMultiple(s, cfg.ExitMultipleBounds, avgGrowth, cfg.GrowthBounds.Mode, cfg.MultipleBoostFactor)
	if err != nil {
		return domain.Trial{}, err
	}

	return domain.Trial{
		GrowthY1:      y1,
		GrowthY2:      y2,
		BaseMultiple:  base,
		FinalMultiple: final,
		ExitValue:     futureARR * final,
	}, nil
}
