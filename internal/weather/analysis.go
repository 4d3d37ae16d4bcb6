package weather

import "time"

// Humidity band edges. Days with humidity in [lowHumidity, highHumidity]
// fall in neither bucket.
const (
	highHumidity = 70
	lowHumidity  = 60
)

// TemperatureSummary is the mean temperature of a month.
type TemperatureSummary struct {
	Average  float64  `json:"averageC"`
	Category Category `json:"category"`
	Days     int      `json:"days"`
}

// ExtremeDay is the hottest or coldest record of a month.
type ExtremeDay struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperatureC"`
	Category    Category  `json:"category"`
}

// Extremes holds the hottest and coldest days of a month.
type Extremes struct {
	Hottest ExtremeDay `json:"hottest"`
	Coldest ExtremeDay `json:"coldest"`
}

// HumiditySummary is the humidity breakdown of a month.
type HumiditySummary struct {
	Average  float64 `json:"averagePercent"`
	HighDays int     `json:"highDays"` // humidity > 70
	LowDays  int     `json:"lowDays"`  // humidity < 60
	Days     int     `json:"days"`
}

// RainySummary counts days with precipitation. Days is the number of records
// in the month, so a zero Count can be told apart from a month without data.
type RainySummary struct {
	Count int `json:"count"`
	Days  int `json:"days"`
}

// ThresholdDays lists the dates matching a threshold query, in input order.
type ThresholdDays struct {
	Threshold float64     `json:"threshold"`
	Above     bool        `json:"above"`
	Dates     []time.Time `json:"dates"`
	Days      int         `json:"days"`
}

// FilterMonth returns the records of the given month in input order.
// The input slice is not modified.
func FilterMonth(records []WeatherRecord, month int) []WeatherRecord {
	var out []WeatherRecord
	for _, r := range records {
		if int(r.Date.Month()) == month {
			out = append(out, r)
		}
	}
	return out
}

// AverageTemperature computes the mean temperature for a month.
// ok is false when the month has no records.
func AverageTemperature(records []WeatherRecord, month int) (summary TemperatureSummary, ok bool) {
	monthRecords := FilterMonth(records, month)
	if len(monthRecords) == 0 {
		return TemperatureSummary{}, false
	}

	var sum float64
	for _, r := range monthRecords {
		sum += r.Temperature
	}
	avg := sum / float64(len(monthRecords))

	return TemperatureSummary{
		Average:  avg,
		Category: Categorize(avg),
		Days:     len(monthRecords),
	}, true
}

// DaysAbove lists days of the month with temperature >= threshold.
func DaysAbove(records []WeatherRecord, month int, threshold float64) ThresholdDays {
	res := ThresholdDays{Threshold: threshold, Above: true}
	for _, r := range FilterMonth(records, month) {
		res.Days++
		if r.Temperature >= threshold {
			res.Dates = append(res.Dates, r.Date)
		}
	}
	return res
}

// DaysBelow lists days of the month with temperature strictly below threshold.
func DaysBelow(records []WeatherRecord, month int, threshold float64) ThresholdDays {
	res := ThresholdDays{Threshold: threshold}
	for _, r := range FilterMonth(records, month) {
		res.Days++
		if r.Temperature < threshold {
			res.Dates = append(res.Dates, r.Date)
		}
	}
	return res
}

// RainyDays counts days of the month with positive precipitation.
func RainyDays(records []WeatherRecord, month int) RainySummary {
	var res RainySummary
	for _, r := range FilterMonth(records, month) {
		res.Days++
		if r.Precipitation > 0 {
			res.Count++
		}
	}
	return res
}

// ExtremeTemperatures finds the hottest and coldest days of a month.
// Ties keep the first record encountered.
func ExtremeTemperatures(records []WeatherRecord, month int) (Extremes, bool) {
	monthRecords := FilterMonth(records, month)
	if len(monthRecords) == 0 {
		return Extremes{}, false
	}

	hottest, coldest := monthRecords[0], monthRecords[0]
	for _, r := range monthRecords[1:] {
		if r.Temperature > hottest.Temperature {
			hottest = r
		}
		if r.Temperature < coldest.Temperature {
			coldest = r
		}
	}

	return Extremes{
		Hottest: extremeDay(hottest),
		Coldest: extremeDay(coldest),
	}, true
}

func extremeDay(r WeatherRecord) ExtremeDay {
	return ExtremeDay{
		Date:        r.Date,
		Temperature: r.Temperature,
		Category:    Categorize(r.Temperature),
	}
}

// HumidityAnalysis summarizes humidity for a month.
func HumidityAnalysis(records []WeatherRecord, month int) (HumiditySummary, bool) {
	monthRecords := FilterMonth(records, month)
	if len(monthRecords) == 0 {
		return HumiditySummary{}, false
	}

	var (
		sum int
		res HumiditySummary
	)
	for _, r := range monthRecords {
		sum += r.Humidity
		switch {
		case r.Humidity > highHumidity:
			res.HighDays++
		case r.Humidity < lowHumidity:
			res.LowDays++
		}
	}

	res.Days = len(monthRecords)
	res.Average = float64(sum) / float64(res.Days)
	return res, true
}
