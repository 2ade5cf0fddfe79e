package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exitsim/exit-value-estimator/internal/domain"
)

func buildTestResult() *domain.SimulationResult {
	values := []float64{40e6, 55e6, 60e6, 62e6, 68e6, 70e6, 75e6, 90e6, 110e6, 130e6}
	return &domain.SimulationResult{
		Config:         domain.DefaultSimulationConfig(),
		Seed:           42,
		NumSimulations: len(values),
		ExitValues:     values,
		Statistics: domain.Statistics{
			Mean:   76e6,
			Median: 69e6,
			P5:     46.75e6,
			P95:    121e6,
			Min:    40e6,
			Max:    130e6,
			StdDev: 25e6,
		},
		AdjustedRevenuePerCustomer: 5202,
	}
}

func buildTestResultWithTrials() *domain.SimulationResult {
	r := buildTestResult()
	r.Trials = make([]domain.Trial, len(r.ExitValues))
	for i, v := range r.ExitValues {
		r.Trials[i] = domain.Trial{GrowthY1: 0.3, GrowthY2: 0.3, BaseMultiple: 7, FinalMultiple: 7, ExitValue: v}
	}
	return r
}

func TestConsoleFormatter(t *testing.T) {
	f := ConsoleFormatter{Bins: 10}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"EXIT VALUE SIMULATION",
		"$76,000,000",
		"$69,000,000",
		"$46,750,000",
		"$121,000,000",
		"$5,000,000",
		"$5202.00",
		"Distribution of exit values ($MM)",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("console output missing %q:\n%s", want, content)
		}
	}
	if got := strings.Count(content, medianMarker); got != 1 {
		t.Fatalf("expected exactly one median marker, got %d", got)
	}
	// 10 bins over 40..130 $MM; median 69 falls into the 67-76 bin
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, medianMarker) && !strings.Contains(line, "67.0 -") {
			t.Fatalf("median marker on wrong bin: %q", line)
		}
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines (header+10 rows), got %d", len(lines))
	}
	if lines[1] != "1,40000000.00" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestCSVFormatterDetailed(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestResultWithTrials())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if lines[1] != "1,0.300000,0.300000,7.000000,7.000000,40000000.00" {
		t.Fatalf("unexpected detailed row %q", lines[1])
	}
}

func TestCSVFormatterMismatchedTrials(t *testing.T) {
	r := buildTestResultWithTrials()
	r.Trials = r.Trials[:3]
	if _, err := (CSVFormatter{}).Format(r); err == nil {
		t.Fatal("expected error for mismatched trial count")
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
		result    *domain.SimulationResult
	}{
		{"csv_summary", "csv_summary.golden", CSVFormatter{}, buildTestResult()},
		{"csv_detailed", "csv_detailed.golden", CSVFormatter{}, buildTestResultWithTrials()},
		{"html", "html_prefix.golden", HTMLFormatter{}, buildTestResult()},
		{"json", "json_prefix.golden", JSONFormatter{}, buildTestResult()},
	}

	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(tc.result)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestHTMLFormatterBasic(t *testing.T) {
	out, err := HTMLFormatter{Bins: 5}.Format(buildTestResult())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"chart.js", "chartjs-plugin-annotation", "borderDash", "$69,000,000", "Exit Value ($MM)", `"median_index":1`} {
		if !strings.Contains(content, want) {
			t.Fatalf("html output missing %q", want)
		}
	}
}

func TestHTMLFormatterEmptyResult(t *testing.T) {
	r := buildTestResult()
	r.ExitValues = nil
	if _, err := (HTMLFormatter{}).Format(r); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	cases := map[string]string{"text": "console", "TXT": "console", "html-report": "html", "json-pretty": "json", " csv ": "csv"}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q not resolved", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatal("expected nil for unknown format")
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := GenerateReport(buildTestResult(), "pdf", t.TempDir(), 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	for _, want := range []string{"console", "csv", "html", "json", "all", "html-report"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing suggestion %q", err.Error(), want)
		}
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	got := strings.Join(AvailableFormatterNames(), ",")
	if got != "console,csv,html,json" {
		t.Fatalf("AvailableFormatterNames = %q", got)
	}
}
