package output

import (
	"fmt"
	"strings"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// GenerateReport writes result in the named format (or every format for
// "all") into dir and returns the written file names.
func GenerateReport(result *domain.SimulationResult, format, dir string, bins int) ([]string, error) {
	if result == nil {
		return nil, fmt.Errorf("no simulation result to report")
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range builtInFormatters(bins) {
			name, err := WriteFormatted(f, result, dir)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatter(format, bins)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	name, err := WriteFormatted(f, result, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
