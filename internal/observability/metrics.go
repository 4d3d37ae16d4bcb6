package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for loading and querying.
type Metrics struct {
	Queries        *prometheus.CounterVec // labels: kind, status
	RecordsLoaded  prometheus.Gauge
	LinesSkipped   prometheus.Counter
	LoadErrors     prometheus.Counter
	ReloadDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Queries,
		m.RecordsLoaded,
		m.LinesSkipped,
		m.LoadErrors,
		m.ReloadDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as
// many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_analyzer",
			Name:      "queries_total",
			Help:      "Month queries by kind and outcome status.",
		}, []string{"kind", "status"}),
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_analyzer",
			Name:      "records_loaded",
			Help:      "Number of records in the current dataset.",
		}),
		LinesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_analyzer",
			Name:      "malformed_lines_total",
			Help:      "CSV lines dropped because they could not be parsed.",
		}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_analyzer",
			Name:      "load_errors_total",
			Help:      "Dataset loads that failed.",
		}),
		ReloadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_analyzer",
			Name:      "load_duration_seconds",
			Help:      "Duration of reading and parsing the data source.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
