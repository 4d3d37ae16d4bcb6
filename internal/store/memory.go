package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

// ErrNotFound is returned before any dataset has been loaded.
var ErrNotFound = weather.ErrNotLoaded

// MemoryStore holds the current dataset in memory. Replace swaps the whole
// dataset; readers share an immutable backing slice.
type MemoryStore struct {
	mu sync.RWMutex

	current *weather.Dataset
	clock   clockwork.Clock
}

// NewMemoryStore creates an empty MemoryStore. A nil clock uses real time.
func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore{clock: clock}
}

// Replace installs a new dataset built from a copy of records.
func (s *MemoryStore) Replace(source string, records []weather.WeatherRecord) weather.Dataset {
	owned := make([]weather.WeatherRecord, len(records))
	copy(owned, records)

	ds := &weather.Dataset{
		ID:       uuid.NewString(),
		Source:   source,
		LoadedAt: s.clock.Now().UTC(),
		Records:  owned,
	}

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()

	return *ds
}

// Current returns the loaded dataset. The Records slice must not be modified.
func (s *MemoryStore) Current() (weather.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return weather.Dataset{}, ErrNotFound
	}
	return *s.current, nil
}

// Len returns the number of records in the current dataset.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return 0
	}
	return len(s.current.Records)
}
