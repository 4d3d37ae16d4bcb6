package weather

import (
	"context"
)

// LoadResult is the outcome of parsing a source. Skipped counts malformed
// lines that were dropped.
type LoadResult struct {
	Records []WeatherRecord
	Skipped int
}

// Source abstracts where the daily series comes from (local file, HTTP).
type Source interface {
	Name() string
	Load(ctx context.Context) (LoadResult, error)
}

// Store is the contract the record store must satisfy.
// Replace swaps the whole dataset; there is no partial update.
type Store interface {
	Replace(source string, records []WeatherRecord) Dataset
	Current() (Dataset, error)
	Len() int
}
