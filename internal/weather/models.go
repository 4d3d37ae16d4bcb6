package weather

import (
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for input and reports.
const DateLayout = "2006-01-02"

// Category is the Hot/Warm/Cold label derived from a temperature.
type Category string

const (
	CategoryHot  Category = "Hot"
	CategoryWarm Category = "Warm"
	CategoryCold Category = "Cold"
)

// Categorization cutoffs in °C.
const (
	hotCutoff  = 30.0
	warmCutoff = 15.0
)

// Categorize labels a single temperature value.
func Categorize(temperature float64) Category {
	switch {
	case temperature >= hotCutoff:
		return CategoryHot
	case temperature >= warmCutoff:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// WeatherRecord is one daily observation.
// Humidity and precipitation are taken as-is; nothing here validates ranges.
type WeatherRecord struct {
	Date          time.Time `json:"date"` // UTC midnight
	Temperature   float64   `json:"temperatureC"`
	Humidity      int       `json:"humidityPercent"`
	Precipitation float64   `json:"precipitationMm"`
}

// Day returns the record date formatted as YYYY-MM-DD.
func (r WeatherRecord) Day() string {
	return r.Date.Format(DateLayout)
}

// Dataset is one complete load of records together with its provenance.
type Dataset struct {
	ID       string          `json:"id"`
	Source   string          `json:"source"`
	LoadedAt time.Time       `json:"loadedAt"`
	Records  []WeatherRecord `json:"-"`
}

// Thresholds configures the hot-day and cold-day queries.
type Thresholds struct {
	Hot  float64 `json:"hot"`
	Cold float64 `json:"cold"`
}

// DefaultThresholds returns the 30°C / 15°C cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Hot: 30.0, Cold: 15.0}
}
