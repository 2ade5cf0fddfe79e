package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/exitsim/exit-value-estimator/internal/calculation"
	"github.com/exitsim/exit-value-estimator/internal/domain"
)

// HTMLFormatter produces a standalone page with summary cards and a Chart.js
// histogram of exit values in $MM with a dashed median marker.
type HTMLFormatter struct {
	Bins int
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"cents": FormatCurrencyCents,
	"pct":   FormatPercentage,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlChart struct {
	Labels      []string `json:"labels"`
	Counts      []int    `json:"counts"`
	MedianIndex int      `json:"median_index"`
	MedianMM    float64  `json:"median_mm"`
}

func (h HTMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	bins := h.Bins
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	hist, err := BuildHistogram(result.ExitValues, bins, MillionScale)
	if err != nil {
		return nil, err
	}

	chart := htmlChart{
		Labels:      make([]string, len(hist.Bins)),
		Counts:      make([]int, len(hist.Bins)),
		MedianIndex: hist.BinIndex(result.Statistics.Median),
		MedianMM:    result.Statistics.Median / MillionScale,
	}
	for i, b := range hist.Bins {
		chart.Labels[i] = fmt.Sprintf("%.1f", (b.Lower+b.Upper)/2)
		chart.Counts[i] = b.Count
	}

	data := struct {
		*domain.SimulationResult
		Chart       htmlChart
		GeneratedAt string
	}{result, chart, calculation.Now().Format("2006-01-02 15:04:05")}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
