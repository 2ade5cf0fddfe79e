package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/exitsim/exit-value-estimator/internal/domain"
)

const (
	histogramBarWidth = 40
	medianMarker      = "<- median"
)

type consoleStyles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	bar    lipgloss.Style
	median lipgloss.Style
}

func defaultConsoleStyles() consoleStyles {
	return consoleStyles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),
		bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")),
		median: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true),
	}
}

// ConsoleFormatter renders the summary and a text histogram of exit values in $MM.
type ConsoleFormatter struct {
	Bins int
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	bins := c.Bins
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	st := defaultConsoleStyles()
	stats := result.Statistics

	var buf bytes.Buffer
	fmt.Fprintln(&buf, st.title.Render("EXIT VALUE SIMULATION"))
	fmt.Fprintln(&buf, strings.Repeat("=", 40))

	row := func(label, value string) {
		fmt.Fprintf(&buf, "%s %s\n", st.label.Render(fmt.Sprintf("%-32s", label+":")), st.value.Render(value))
	}
	row("Simulations", fmt.Sprintf("%d", result.NumSimulations))
	row("Seed", fmt.Sprintf("%d", result.Seed))
	row("Starting ARR", FormatCurrency(result.Config.StartingARR))
	row("Growth (low / mode / high)", fmt.Sprintf("%s / %s / %s",
		FormatPercentage(result.Config.GrowthBounds.Low),
		FormatPercentage(result.Config.GrowthBounds.Mode),
		FormatPercentage(result.Config.GrowthBounds.High)))
	row("Exit multiple (low / mode / high)", fmt.Sprintf("%gx / %gx / %gx",
		result.Config.ExitMultipleBounds.Low,
		result.Config.ExitMultipleBounds.Mode,
		result.Config.ExitMultipleBounds.High))
	row("Adjusted revenue per customer", FormatCurrencyCents(result.AdjustedRevenuePerCustomer))
	fmt.Fprintln(&buf)

	row("Mean exit value", FormatCurrency(stats.Mean))
	row("Median exit value", FormatCurrency(stats.Median))
	row("5th percentile", FormatCurrency(stats.P5))
	row("95th percentile", FormatCurrency(stats.P95))
	row("Minimum", FormatCurrency(stats.Min))
	row("Maximum", FormatCurrency(stats.Max))
	row("Standard deviation", FormatCurrency(stats.StdDev))

	if len(result.ExitValues) == 0 {
		return buf.Bytes(), nil
	}

	hist, err := BuildHistogram(result.ExitValues, bins, MillionScale)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, st.title.Render("Distribution of exit values ($MM)"))
	writeTextHistogram(&buf, hist, stats.Median, st)

	return buf.Bytes(), nil
}

func writeTextHistogram(buf *bytes.Buffer, h *Histogram, median float64, st consoleStyles) {
	maxCount := h.MaxCount()
	medianBin := h.BinIndex(median)
	for i, b := range h.Bins {
		width := 0
		if maxCount > 0 {
			width = b.Count * histogramBarWidth / maxCount
		}
		if b.Count > 0 && width == 0 {
			width = 1
		}
		line := fmt.Sprintf("%8.1f - %8.1f | %s %d",
			b.Lower, b.Upper,
			st.bar.Render(strings.Repeat("#", width)),
			b.Count)
		if i == medianBin {
			line += " " + st.median.Render(medianMarker)
		}
		fmt.Fprintln(buf, line)
	}
}
