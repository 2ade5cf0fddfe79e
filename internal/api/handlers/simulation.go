package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/exitsim/exit-value-estimator/internal/api/models"
	"github.com/exitsim/exit-value-estimator/internal/calculation"
	"github.com/exitsim/exit-value-estimator/internal/config"
	"github.com/exitsim/exit-value-estimator/internal/domain"
	"github.com/exitsim/exit-value-estimator/internal/output"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxSimulations caps the trial count of a single API request.
const MaxSimulations = 1_000_000

// SimulationHandler handles simulation requests
type SimulationHandler struct {
	settings *config.Settings
	logger   *zap.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(settings *config.Settings, logger *zap.Logger) *SimulationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulationHandler{settings: settings, logger: logger}
}

// GetDefaults handles GET /api/v1/defaults
func (h *SimulationHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, domain.DefaultSimulationConfig())
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
			return
		}
	}

	cfg, err := decodeConfig(req.Config)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	if cfg.NumSimulations > MaxSimulations {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest,
			fmt.Sprintf("n_simulations cannot exceed %d", MaxSimulations), nil)
		return
	}

	seed := h.settings.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	bins := req.Bins
	if bins == 0 {
		bins = h.settings.HistogramBins
	}

	id := uuid.NewString()
	log := h.logger.With(zap.String("simulation_id", id))

	sim := calculation.NewMonteCarloSimulator(calculation.MonteCarloConfig{
		Seed:      seed,
		Workers:   h.settings.Workers,
		Sharpness: h.settings.Sharpness,
	})
	sim.SetLogger(log.Sugar())

	result, err := sim.RunSimulation(c.Request.Context(), cfg)
	if err != nil {
		h.handleRunError(c, log, err)
		return
	}

	hist, err := output.BuildHistogram(result.ExitValues, bins, output.MillionScale)
	if err != nil {
		h.handleRunError(c, log, err)
		return
	}

	resp := models.SimulationResponse{
		ID:                         id,
		Status:                     models.StatusCompleted,
		Seed:                       result.Seed,
		NumSimulations:             result.NumSimulations,
		Config:                     result.Config,
		Summary:                    result.Statistics,
		AdjustedRevenuePerCustomer: result.AdjustedRevenuePerCustomer,
		Histogram:                  hist,
	}
	if req.IncludeExitValues {
		resp.ExitValues = result.ExitValues
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SimulationHandler) handleRunError(c *gin.Context, log *zap.Logger, err error) {
	var cfgErr *domain.ConfigurationError
	var domErr *domain.DomainError
	switch {
	case errors.As(err, &cfgErr):
		respondError(c, http.StatusBadRequest, models.CodeInvalidConfig, err.Error(), map[string]interface{}{
			"field": cfgErr.Field,
		})
	case errors.As(err, &domErr):
		log.Warn("simulation failed", zap.Error(err))
		respondError(c, http.StatusUnprocessableEntity, models.CodeSimulationFailed, err.Error(), map[string]interface{}{
			"op": domErr.Op,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusServiceUnavailable, models.CodeCancelled, err.Error(), nil)
	default:
		log.Error("simulation error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
	}
}

// decodeConfig overlays raw JSON on the default parameter set.
func decodeConfig(raw json.RawMessage) (domain.SimulationConfig, error) {
	cfg := domain.DefaultSimulationConfig()
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return cfg, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	_ = c.Error(errors.New(message))
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
