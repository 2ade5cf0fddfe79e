package models

import "encoding/json"

// SimulationRequest represents the request body for running a simulation.
// Config is decoded over the default parameter set, so omitted keys keep
// their defaults.
type SimulationRequest struct {
	Config            json.RawMessage `json:"config,omitempty"`
	Seed              *int64          `json:"seed,omitempty"`
	Bins              int             `json:"bins,omitempty" binding:"omitempty,min=1,max=500"`
	IncludeExitValues bool            `json:"include_exit_values,omitempty"`
}
