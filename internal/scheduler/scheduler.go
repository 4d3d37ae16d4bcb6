package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

// Reloader replaces the dataset from its source.
type Reloader interface {
	Reload(ctx context.Context) (weather.Dataset, error)
}

// Scheduler periodically reloads the weather dataset.
type Scheduler struct {
	scheduler *gocron.Scheduler
	reloader  Reloader
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. An interval <= 0 disables reloading.
func New(interval, timeout time.Duration, reloader Reloader) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		reloader:  reloader,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the reload job and starts the underlying scheduler.
// The first run happens one interval after Start; the caller does the
// initial load.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: reload interval not set; dataset will not be refreshed")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Do(s.runOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	log.Printf("scheduler: reloading dataset every %s", s.interval)
	return nil
}

func (s *Scheduler) runOnce() {
	log.Println("scheduler: running dataset reload job")

	timeout := s.timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := s.reloader.Reload(ctx); err != nil {
		log.Printf("scheduler: reload failed: %v", err)
		return
	}
	log.Println("scheduler: completed dataset reload job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Jobs returns the number of scheduled jobs.
func (s *Scheduler) Jobs() int {
	return len(s.scheduler.Jobs())
}
