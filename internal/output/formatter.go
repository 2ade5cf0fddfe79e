package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/exitsim/exit-value-estimator/internal/calculation"
	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultHistogramBins matches the 50-bin chart of the report.
const DefaultHistogramBins = 50

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.SimulationResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*domain.SimulationResult) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.SimulationResult) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }
func (ff FormatterFunc) Extension() string                                 { return ff.Ext }

// ReportFilename returns the timestamped report name for ext.
func ReportFilename(ext string) string {
	return fmt.Sprintf("exit_value_report_%s.%s", calculation.Now().Format("20060102_150405"), ext)
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, result *domain.SimulationResult, dir string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(dir, ReportFilename(f.Extension()))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters builds the registry for a histogram bin count.
func builtInFormatters(bins int) []Formatter {
	return []Formatter{
		ConsoleFormatter{Bins: bins},
		CSVFormatter{},
		HTMLFormatter{Bins: bins},
		JSONFormatter{},
	}
}

// GetFormatterByName fetches a registered formatter using the default bin count.
func GetFormatterByName(name string) Formatter {
	return GetFormatter(name, DefaultHistogramBins)
}

// GetFormatter fetches a registered formatter configured with bins.
func GetFormatter(name string, bins int) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters(bins) {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"csv-trials":  "csv",
	"html-report": "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	fs := builtInFormatters(DefaultHistogramBins)
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
