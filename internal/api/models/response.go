package models

import (
	"github.com/exitsim/exit-value-estimator/internal/domain"
	"github.com/exitsim/exit-value-estimator/internal/output"
)

// SimulationResponse represents the response from a simulation run
type SimulationResponse struct {
	ID                         string                  `json:"id"`
	Status                     string                  `json:"status"`
	Seed                       int64                   `json:"seed"`
	NumSimulations             int                     `json:"num_simulations"`
	Config                     domain.SimulationConfig `json:"config"`
	Summary                    domain.Statistics       `json:"summary"`
	AdjustedRevenuePerCustomer float64                 `json:"adjusted_revenue_per_customer"`
	Histogram                  *output.Histogram       `json:"histogram"`
	ExitValues                 []float64               `json:"exit_values,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned by the API.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidConfig    = "INVALID_CONFIG"
	CodeSimulationFailed = "SIMULATION_FAILED"
	CodeCancelled        = "SIMULATION_CANCELLED"
	CodeInternal         = "INTERNAL_ERROR"
)

// StatusCompleted marks a finished run.
const StatusCompleted = "completed"
