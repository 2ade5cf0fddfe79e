package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// CSVFormatter writes one row per trial. Growth and multiple columns are
// included when the run kept its trials.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	detailed := len(result.Trials) > 0
	if detailed && len(result.Trials) != len(result.ExitValues) {
		return nil, fmt.Errorf("trial count %d does not match exit value count %d", len(result.Trials), len(result.ExitValues))
	}

	header := []string{"trial", "exit_value"}
	if detailed {
		header = []string{"trial", "growth_y1", "growth_y2", "base_multiple", "final_multiple", "exit_value"}
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, v := range result.ExitValues {
		row := []string{strconv.Itoa(i + 1), formatFloat(v, 2)}
		if detailed {
			t := result.Trials[i]
			row = []string{
				strconv.Itoa(i + 1),
				formatFloat(t.GrowthY1, 6),
				formatFloat(t.GrowthY2, 6),
				formatFloat(t.BaseMultiple, 6),
				formatFloat(t.FinalMultiple, 6),
				formatFloat(t.ExitValue, 2),
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write trial %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
