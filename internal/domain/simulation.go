package domain

// Bounds is a three-point estimate used to parameterize a PERT draw.
type Bounds struct {
	Low  float64 `yaml:"low" json:"low"`
	Mode float64 `yaml:"mode" json:"mode"`
	High float64 `yaml:"high" json:"high"`
}

// Width returns High - Low.
func (b Bounds) Width() float64 { return b.High - b.Low }

// Ordered reports whether Low <= Mode <= High.
func (b Bounds) Ordered() bool { return b.Low <= b.Mode && b.Mode <= b.High }

// Contains reports whether v lies inside [Low, High].
func (b Bounds) Contains(v float64) bool { return v >= b.Low && v <= b.High }

// SimulationConfig holds every model parameter of one exit value simulation run
type SimulationConfig struct {
	StartingARR         float64 `yaml:"starting_arr" json:"starting_arr"`
	RevenuePerCustomer  float64 `yaml:"revenue_per_customer" json:"revenue_per_customer"` // Carried and inflation adjusted, not used by the exit math
	InflationRate       float64 `yaml:"inflation_rate" json:"inflation_rate"`
	GrowthBounds        Bounds  `yaml:"growth_bounds" json:"growth_bounds"`
	ExitMultipleBounds  Bounds  `yaml:"exit_multiple_bounds" json:"exit_multiple_bounds"`
	NumSimulations      int     `yaml:"n_simulations" json:"n_simulations"`
	CorrelationStrength float64 `yaml:"correlation_strength" json:"correlation_strength"`
	MultipleBoostFactor float64 `yaml:"multiple_boost_factor" json:"multiple_boost_factor"`
}

// DefaultSimulationConfig returns the stock parameter set used when nothing else is supplied.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		StartingARR:         5_000_000,
		RevenuePerCustomer:  5_000,
		InflationRate:       0.02,
		GrowthBounds:        Bounds{Low: 0.15, Mode: 0.30, High: 0.70},
		ExitMultipleBounds:  Bounds{Low: 5, Mode: 7, High: 12},
		NumSimulations:      10_000,
		CorrelationStrength: 0.6,
		MultipleBoostFactor: 0.5,
	}
}

// AdjustedRevenuePerCustomer scales revenue per customer by two periods of inflation.
func (c SimulationConfig) AdjustedRevenuePerCustomer() float64 {
	f := 1 + c.InflationRate
	return c.RevenuePerCustomer * f * f
}

// Trial is the outcome of one simulated path
type Trial struct {
	GrowthY1      float64 `json:"growth_y1"`
	GrowthY2      float64 `json:"growth_y2"`
	BaseMultiple  float64 `json:"base_multiple"`
	FinalMultiple float64 `json:"final_multiple"`
	ExitValue     float64 `json:"exit_value"`
}

// Statistics summarizes a set of simulated exit values
type Statistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P5     float64 `json:"p5"`
	P95    float64 `json:"p95"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// SimulationResult is the output of a completed run. ExitValues is in trial order.
type SimulationResult struct {
	Config                     SimulationConfig `json:"config"`
	Seed                       int64            `json:"seed"`
	NumSimulations             int              `json:"num_simulations"`
	ExitValues                 []float64        `json:"exit_values"`
	Statistics                 Statistics       `json:"statistics"`
	AdjustedRevenuePerCustomer float64          `json:"adjusted_revenue_per_customer"`
	Trials                     []Trial          `json:"trials,omitempty"`
}

// Mean, Median, P5 and P95 expose the headline statistics directly.
func (r *SimulationResult) Mean() float64   { return r.Statistics.Mean }
func (r *SimulationResult) Median() float64 { return r.Statistics.Median }
func (r *SimulationResult) P5() float64     { return r.Statistics.P5 }
func (r *SimulationResult) P95() float64    { return r.Statistics.P95 }
