package calculation

import (
	"math"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// ValidateConfig checks a SimulationConfig before any trial runs and returns
// the first problem found as a *domain.ConfigurationError.
func ValidateConfig(cfg *domain.SimulationConfig) error {
	if cfg == nil {
		return domain.NewConfigurationError("", "configuration is required")
	}
	if !finite(cfg.StartingARR) || cfg.StartingARR <= 0 {
		return domain.NewConfigurationError("starting_arr", "must be positive, got %g", cfg.StartingARR)
	}
	if !finite(cfg.RevenuePerCustomer) || cfg.RevenuePerCustomer < 0 {
		return domain.NewConfigurationError("revenue_per_customer", "cannot be negative, got %g", cfg.RevenuePerCustomer)
	}
	if !finite(cfg.InflationRate) || cfg.InflationRate < 0 || cfg.InflationRate >= 1 {
		return domain.NewConfigurationError("inflation_rate", "must be in [0, 1), got %g", cfg.InflationRate)
	}

	if err := validateBounds("growth_bounds", cfg.GrowthBounds); err != nil {
		return err
	}
	g := cfg.GrowthBounds
	if g.Low < 0 || g.High > 1 {
		return domain.NewConfigurationError("growth_bounds", "each rate must be in [0, 1], got (%g, %g, %g)", g.Low, g.Mode, g.High)
	}
	if g.Mode == 0 {
		return domain.NewConfigurationError("growth_bounds.mode", "must be non-zero (the growth boost divides by it)")
	}

	if err := validateBounds("exit_multiple_bounds", cfg.ExitMultipleBounds); err != nil {
		return err
	}
	if cfg.ExitMultipleBounds.Low <= 0 {
		return domain.NewConfigurationError("exit_multiple_bounds", "multiples must be positive, got low=%g", cfg.ExitMultipleBounds.Low)
	}

	if cfg.NumSimulations < 1 {
		return domain.NewConfigurationError("n_simulations", "must be at least 1, got %d", cfg.NumSimulations)
	}
	if !finite(cfg.CorrelationStrength) || cfg.CorrelationStrength < 0 || cfg.CorrelationStrength > 1 {
		return domain.NewConfigurationError("correlation_strength", "must be in [0, 1], got %g", cfg.CorrelationStrength)
	}
	if !finite(cfg.MultipleBoostFactor) || cfg.MultipleBoostFactor < 0 {
		return domain.NewConfigurationError("multiple_boost_factor", "cannot be negative, got %g", cfg.MultipleBoostFactor)
	}
	return nil
}

func validateBounds(field string, b domain.Bounds) error {
	if !finite(b.Low) || !finite(b.Mode) || !finite(b.High) {
		return domain.NewConfigurationError(field, "values must be finite")
	}
	if b.Low > b.Mode {
		return domain.NewConfigurationError(field, "low (%g) cannot exceed mode (%g)", b.Low, b.Mode)
	}
	if b.Mode > b.High {
		return domain.NewConfigurationError(field, "mode (%g) cannot exceed high (%g)", b.Mode, b.High)
	}
	if b.Low == b.High {
		return domain.NewConfigurationError(field, "low and high cannot be equal (%g)", b.Low)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
