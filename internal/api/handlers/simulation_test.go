package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/exitsim/exit-value-estimator/internal/api/models"
	"github.com/exitsim/exit-value-estimator/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := decodeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSimulationConfig(), cfg)

	cfg, err = decodeConfig(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSimulationConfig(), cfg)

	cfg, err = decodeConfig(json.RawMessage(`{"starting_arr": 2000000, "exit_multiple_bounds": {"low": 3, "mode": 4, "high": 9}}`))
	require.NoError(t, err)
	assert.Equal(t, 2_000_000.0, cfg.StartingARR)
	assert.Equal(t, domain.Bounds{Low: 3, Mode: 4, High: 9}, cfg.ExitMultipleBounds)
	assert.Equal(t, domain.DefaultSimulationConfig().GrowthBounds, cfg.GrowthBounds)

	_, err = decodeConfig(json.RawMessage(`{"nope": 1}`))
	assert.Error(t, err)
}

func TestHandleRunErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSimulationHandler(nil, nil)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"configuration", domain.NewConfigurationError("n_simulations", "must be at least 1"), http.StatusBadRequest, models.CodeInvalidConfig},
		{"domain", fmt.Errorf("trial 3: %w", domain.NewDomainError("pert", "bad shape")), http.StatusUnprocessableEntity, models.CodeSimulationFailed},
		{"cancelled", fmt.Errorf("run: %w", context.Canceled), http.StatusServiceUnavailable, models.CodeCancelled},
		{"other", assert.AnError, http.StatusInternalServerError, models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			h.handleRunError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
