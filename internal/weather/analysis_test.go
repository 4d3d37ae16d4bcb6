package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(date time.Time, temp float64, humidity int, precip float64) WeatherRecord {
	return WeatherRecord{Date: date, Temperature: temp, Humidity: humidity, Precipitation: precip}
}

// januaryFixture mixes in records from other months to check filtering.
func januaryFixture() []WeatherRecord {
	return []WeatherRecord{
		rec(day(2023, 1, 5), 5.0, 50, 2.0),
		rec(day(2023, 2, 1), 40.0, 99, 9.0),
		rec(day(2023, 1, 10), 10.0, 80, 0.0),
		rec(day(2023, 1, 15), -5.0, 40, 0.0),
		rec(day(2023, 7, 1), 35.0, 10, 0.0),
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		expected Category
	}{
		{"well above hot", 41.2, CategoryHot},
		{"hot boundary", 30.0, CategoryHot},
		{"just below hot", 29.99, CategoryWarm},
		{"warm boundary", 15.0, CategoryWarm},
		{"just below warm", 14.99, CategoryCold},
		{"freezing", -12.5, CategoryCold},
		{"ten degrees", 10.0, CategoryCold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.temp))
		})
	}
}

func TestFilterMonth_KeepsOrderAndDoesNotMutate(t *testing.T) {
	records := januaryFixture()
	before := append([]WeatherRecord(nil), records...)

	got := FilterMonth(records, 1)

	require.Len(t, got, 3)
	assert.Equal(t, day(2023, 1, 5), got[0].Date)
	assert.Equal(t, day(2023, 1, 10), got[1].Date)
	assert.Equal(t, day(2023, 1, 15), got[2].Date)
	assert.Equal(t, before, records)
}

func TestAverageTemperature(t *testing.T) {
	s, ok := AverageTemperature(januaryFixture(), 1)
	require.True(t, ok)

	assert.InDelta(t, (5.0+10.0-5.0)/3, s.Average, 1e-9)
	assert.Equal(t, CategoryCold, s.Category)
	assert.Equal(t, 3, s.Days)
}

func TestAverageTemperature_EmptyMonth(t *testing.T) {
	_, ok := AverageTemperature(januaryFixture(), 3)
	assert.False(t, ok)

	_, ok = AverageTemperature(nil, 1)
	assert.False(t, ok)
}

func TestAverageTemperature_DuplicateDatesCountTwice(t *testing.T) {
	records := []WeatherRecord{
		rec(day(2023, 5, 1), 10, 50, 0),
		rec(day(2023, 5, 1), 20, 50, 0),
		rec(day(2023, 5, 1), 30, 50, 0),
	}

	s, ok := AverageTemperature(records, 5)
	require.True(t, ok)
	assert.InDelta(t, 20.0, s.Average, 1e-9)
	assert.Equal(t, CategoryWarm, s.Category)
}

func TestThresholdBoundaryPartition(t *testing.T) {
	records := []WeatherRecord{
		rec(day(2023, 7, 3), 29.9, 50, 0),
		rec(day(2023, 7, 1), 30.0, 50, 0),
		rec(day(2023, 7, 2), 30.1, 50, 0),
	}

	above := DaysAbove(records, 7, 30.0)
	below := DaysBelow(records, 7, 30.0)

	assert.Equal(t, []time.Time{day(2023, 7, 1), day(2023, 7, 2)}, above.Dates)
	assert.Equal(t, []time.Time{day(2023, 7, 3)}, below.Dates)
	assert.Equal(t, len(records), len(above.Dates)+len(below.Dates))
	assert.True(t, above.Above)
	assert.False(t, below.Above)
	assert.Equal(t, 3, above.Days)
}

func TestDaysBelow_January(t *testing.T) {
	got := DaysBelow(januaryFixture(), 1, 15.0)
	assert.Equal(t, []time.Time{day(2023, 1, 5), day(2023, 1, 10), day(2023, 1, 15)}, got.Dates)
}

func TestDaysAbove_NoMatches(t *testing.T) {
	got := DaysAbove(januaryFixture(), 1, 30.0)
	assert.Empty(t, got.Dates)
	assert.Equal(t, 3, got.Days)
}

func TestRainyDays(t *testing.T) {
	got := RainyDays(januaryFixture(), 1)
	assert.Equal(t, RainySummary{Count: 1, Days: 3}, got)

	dry := []WeatherRecord{rec(day(2023, 8, 1), 25, 50, 0)}
	assert.Equal(t, RainySummary{Count: 0, Days: 1}, RainyDays(dry, 8))
	assert.Equal(t, RainySummary{}, RainyDays(dry, 9))
}

func TestExtremeTemperatures(t *testing.T) {
	e, ok := ExtremeTemperatures(januaryFixture(), 1)
	require.True(t, ok)

	assert.Equal(t, day(2023, 1, 10), e.Hottest.Date)
	assert.Equal(t, 10.0, e.Hottest.Temperature)
	assert.Equal(t, CategoryCold, e.Hottest.Category)
	assert.Equal(t, day(2023, 1, 15), e.Coldest.Date)
	assert.Equal(t, -5.0, e.Coldest.Temperature)
	assert.Equal(t, CategoryCold, e.Coldest.Category)
}

func TestExtremeTemperatures_SingleRecord(t *testing.T) {
	records := []WeatherRecord{rec(day(2023, 4, 9), 10.0, 50, 0)}

	e, ok := ExtremeTemperatures(records, 4)
	require.True(t, ok)
	assert.Equal(t, e.Hottest, e.Coldest)
	assert.Equal(t, CategoryCold, e.Hottest.Category)
}

func TestExtremeTemperatures_TiesKeepFirst(t *testing.T) {
	records := []WeatherRecord{
		rec(day(2023, 6, 10), 20, 50, 0),
		rec(day(2023, 6, 2), 31, 50, 0),
		rec(day(2023, 6, 1), 31, 50, 0),
		rec(day(2023, 6, 5), 12, 50, 0),
		rec(day(2023, 6, 3), 12, 50, 0),
	}

	e, ok := ExtremeTemperatures(records, 6)
	require.True(t, ok)
	assert.Equal(t, day(2023, 6, 2), e.Hottest.Date)
	assert.Equal(t, CategoryHot, e.Hottest.Category)
	assert.Equal(t, day(2023, 6, 5), e.Coldest.Date)
}

func TestExtremeTemperatures_EmptyMonth(t *testing.T) {
	_, ok := ExtremeTemperatures(januaryFixture(), 12)
	assert.False(t, ok)
}

func TestHumidityAnalysis_BandIsUncounted(t *testing.T) {
	records := []WeatherRecord{
		rec(day(2023, 9, 1), 20, 60, 0),
		rec(day(2023, 9, 2), 20, 65, 0),
		rec(day(2023, 9, 3), 20, 70, 0),
		rec(day(2023, 9, 4), 20, 71, 0),
		rec(day(2023, 9, 5), 20, 59, 0),
	}

	s, ok := HumidityAnalysis(records, 9)
	require.True(t, ok)

	assert.Equal(t, 1, s.HighDays)
	assert.Equal(t, 1, s.LowDays)
	assert.Equal(t, 5, s.Days)
	assert.InDelta(t, 65.0, s.Average, 1e-9)
}

func TestHumidityAnalysis_January(t *testing.T) {
	s, ok := HumidityAnalysis(januaryFixture(), 1)
	require.True(t, ok)

	assert.InDelta(t, 170.0/3, s.Average, 1e-9)
	assert.Equal(t, 1, s.HighDays)
	assert.Equal(t, 2, s.LowDays)
}

func TestHumidityAnalysis_EmptyMonth(t *testing.T) {
	_, ok := HumidityAnalysis(nil, 1)
	assert.False(t, ok)
}
