package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/i474232898/weather-data-analyzer/internal/observability"
)

// ErrNotLoaded is returned by stores that have not received a dataset yet.
var ErrNotLoaded = errors.New("no weather dataset loaded")

// Service ties the record store, its source, and the query thresholds together.
type Service struct {
	store      Store
	source     Source
	thresholds Thresholds
	metrics    *observability.Metrics
}

// NewService creates a new Service.
func NewService(store Store, source Source, thresholds Thresholds, metrics *observability.Metrics) *Service {
	return &Service{
		store:      store,
		source:     source,
		thresholds: thresholds,
		metrics:    metrics,
	}
}

// Reload reads the source and replaces the stored dataset. On failure the
// previous dataset is kept.
func (s *Service) Reload(ctx context.Context) (Dataset, error) {
	if s.source == nil {
		return Dataset{}, fmt.Errorf("no weather source configured")
	}

	start := time.Now()
	res, err := s.source.Load(ctx)
	s.metrics.ReloadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.LoadErrors.Inc()
		log.Printf("ERROR: loading %s failed; keeping previous dataset if any: %v", s.source.Name(), err)
		return Dataset{}, fmt.Errorf("load %s: %w", s.source.Name(), err)
	}

	ds := s.store.Replace(s.source.Name(), res.Records)
	s.metrics.RecordsLoaded.Set(float64(len(res.Records)))
	s.metrics.LinesSkipped.Add(float64(res.Skipped))

	log.Printf("INFO: loaded %d records from %s (dataset %s, %d malformed lines skipped)",
		len(res.Records), s.source.Name(), ds.ID, res.Skipped)
	return ds, nil
}

// Dataset delegates to the underlying store.
func (s *Service) Dataset() (Dataset, error) {
	return s.store.Current()
}

// Records returns the current records, or nil before the first load.
func (s *Service) Records() []WeatherRecord {
	ds, err := s.store.Current()
	if err != nil {
		return nil
	}
	return ds.Records
}

// RecordCount returns the size of the current dataset, 0 before the first load.
func (s *Service) RecordCount() int {
	return s.store.Len()
}

// Thresholds returns the configured hot/cold thresholds.
func (s *Service) Thresholds() Thresholds {
	return s.thresholds
}

// RunQuery evaluates q against the current dataset.
func (s *Service) RunQuery(q Query) Report {
	rep := RunQuery(s.Records(), q, s.thresholds)
	kind := string(q.Kind)
	if !q.Kind.Valid() {
		kind = "unknown"
	}
	s.metrics.Queries.WithLabelValues(kind, string(rep.Status)).Inc()
	return rep
}
