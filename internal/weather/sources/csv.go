package sources

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

// ErrEmptySource is returned when the input does not even contain a header row.
var ErrEmptySource = errors.New("weather source is empty")

const (
	// minColumns is date, temperature, humidity, precipitation. Extra columns are ignored.
	minColumns = 4

	maxLineSize = 1 << 20
)

// ParseCSV reads a header row followed by daily rows. Each line is split on
// its own, so a malformed line never affects its neighbours. Rows that cannot
// be parsed are dropped and counted in LoadResult.Skipped; only read errors
// fail the whole parse. Quoting is not supported.
func ParseCSV(r io.Reader) (weather.LoadResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var res weather.LoadResult

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return res, fmt.Errorf("read header: %w", err)
		}
		return res, ErrEmptySource
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := parseRow(strings.Split(line, ","))
		if err != nil {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read row: %w", err)
	}

	return res, nil
}

func parseRow(row []string) (weather.WeatherRecord, error) {
	if len(row) < minColumns {
		return weather.WeatherRecord{}, fmt.Errorf("expected %d columns, got %d", minColumns, len(row))
	}

	date, err := time.Parse(weather.DateLayout, strings.TrimSpace(row[0]))
	if err != nil {
		return weather.WeatherRecord{}, fmt.Errorf("date: %w", err)
	}
	temp, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return weather.WeatherRecord{}, fmt.Errorf("temperature: %w", err)
	}
	humidity, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return weather.WeatherRecord{}, fmt.Errorf("humidity: %w", err)
	}
	precip, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return weather.WeatherRecord{}, fmt.Errorf("precipitation: %w", err)
	}

	return weather.WeatherRecord{
		Date:          date,
		Temperature:   temp,
		Humidity:      humidity,
		Precipitation: precip,
	}, nil
}
