package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/exitsim/exit-value-estimator/internal/calculation"
	"github.com/exitsim/exit-value-estimator/internal/domain"
	"github.com/exitsim/exit-value-estimator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.SimulationResult {
	return &domain.SimulationResult{
		Config:         domain.DefaultSimulationConfig(),
		Seed:           7,
		NumSimulations: 4,
		ExitValues:     []float64{50e6, 60e6, 70e6, 80e6},
		Statistics:     domain.Statistics{Mean: 65e6, Median: 65e6, P5: 51.5e6, P95: 78.5e6, Min: 50e6, Max: 80e6},
	}
}

func fixClock(t *testing.T) {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$12,345,678", output.FormatCurrency(12345678.4))
	assert.Equal(t, "$5202.00", output.FormatCurrencyCents(5202))
	assert.Equal(t, "$68.1M", output.FormatMillions(68_100_000))
	assert.Equal(t, "30.00%", output.FormatPercentage(0.3))
}

func TestGenerateReport_SingleFormat(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	files, err := output.GenerateReport(sampleResult(), "json", dir, 0)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "exit_value_report_20250304_050607.json"), files[0])

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seed": 7`)
}

func TestGenerateReport_All(t *testing.T) {
	fixClock(t)
	dir := filepath.Join(t.TempDir(), "nested")

	files, err := output.GenerateReport(sampleResult(), "all", dir, 10)
	require.NoError(t, err)
	require.Len(t, files, 4)

	var exts []string
	for _, f := range files {
		_, statErr := os.Stat(f)
		require.NoError(t, statErr)
		exts = append(exts, filepath.Ext(f))
	}
	assert.ElementsMatch(t, []string{".txt", ".csv", ".html", ".json"}, exts)
}

func TestGenerateReport_NilResult(t *testing.T) {
	_, err := output.GenerateReport(nil, "json", t.TempDir(), 0)
	assert.Error(t, err)
}

func TestWriteFormatted_PropagatesFormatterError(t *testing.T) {
	f := output.FormatterFunc{ID: "broken", Ext: "txt", F: func(*domain.SimulationResult) ([]byte, error) {
		return nil, assert.AnError
	}}
	_, err := output.WriteFormatted(f, sampleResult(), t.TempDir())
	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, strings.HasPrefix(err.Error(), "broken formatter"))
}
