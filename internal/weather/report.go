package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Status classifies the outcome of a query.
type Status string

const (
	StatusOK              Status = "ok"
	StatusNoData          Status = "no_data"
	StatusNoMonthSelected Status = "no_month_selected"
	StatusInvalidMonth    Status = "invalid_month"
	StatusNoQuery         Status = "no_query_selected"
)

// Report is the result of one query: a structured Result and its text rendering.
type Report struct {
	Kind      Kind   `json:"kind,omitempty"`
	Month     int    `json:"month,omitempty"`
	MonthName string `json:"monthName,omitempty"`
	Status    Status `json:"status"`
	Text      string `json:"text"`
	Result    any    `json:"result,omitempty"`
}

const (
	noMonthSelectedText = "No month selected"
	noQuerySelectedText = "Select an analysis option"
)

func formatAverageTemperature(monthName string, s TemperatureSummary, ok bool) string {
	if !ok {
		return "No temperature data available for " + monthName
	}
	return fmt.Sprintf("Average temperature in %s:\n%.2f°C (%s)\n", monthName, s.Average, s.Category)
}

func formatThresholdDays(monthName string, d ThresholdDays) string {
	direction := "below"
	if d.Above {
		direction = "above"
	}
	header := fmt.Sprintf("Days %s %s°C in %s", direction, formatThreshold(d.Threshold), monthName)
	if len(d.Dates) == 0 {
		return "No " + strings.ToLower(header[:1]) + header[1:]
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(":")
	for _, date := range d.Dates {
		b.WriteString("\n")
		b.WriteString(date.Format(DateLayout))
	}
	return b.String()
}

func formatRainyDays(monthName string, s RainySummary) string {
	// Zero rainy days and a month without records share this text.
	if s.Count == 0 {
		return "No precipitation data available for " + monthName
	}
	return fmt.Sprintf("Number of rainy days in %s: %d", monthName, s.Count)
}

func formatExtremes(monthName string, e Extremes, ok bool) string {
	if !ok {
		return "No temperature data available for " + monthName
	}
	return fmt.Sprintf("Extreme temperatures in %s:\nHottest day: %s (%.2f°C, %s)\nColdest day: %s (%.2f°C, %s)\n",
		monthName,
		e.Hottest.Date.Format(DateLayout), e.Hottest.Temperature, e.Hottest.Category,
		e.Coldest.Date.Format(DateLayout), e.Coldest.Temperature, e.Coldest.Category,
	)
}

func formatHumidity(monthName string, s HumiditySummary, ok bool) string {
	if !ok {
		return "No humidity data available for " + monthName
	}
	return fmt.Sprintf("Humidity Analysis for %s:\nAverage Humidity: %.2f%%\nNumber of days with Humidity > 70%%: %d\nNumber of days with Humidity < 60%%: %d\n",
		monthName, s.Average, s.HighDays, s.LowDays)
}

// formatThreshold renders t the way Java's Double.toString does: plain
// decimals with at least one fractional digit (30 -> "30.0", 22.5 -> "22.5"),
// and E notation outside [1e-3, 1e7) (1e7 -> "1.0E7", 0.0001 -> "1.0E-4").
func formatThreshold(t float64) string {
	if abs := math.Abs(t); abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		return formatScientific(t)
	}
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatScientific(t float64) string {
	s := strconv.FormatFloat(t, 'E', -1, 64) // e.g. "1.25E+08", "1E-04"
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
