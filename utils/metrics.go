package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Tracker Metrics
	EntriesAppendedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_entries_appended_total",
			Help: "Total number of entries appended per tracker log",
		},
		[]string{"tracker"},
	)

	// Insight Metrics
	InsightGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_generations_total",
			Help: "Total number of insight generation cycles by outcome",
		},
		[]string{"outcome"}, // generated, fallback
	)

	InsightCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insight_call_duration_seconds",
			Help:    "Duration of external insight generation calls",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// Archive Metrics
	ArchiveWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "archive_writes_total",
			Help: "Total number of entry archive writes by status",
		},
		[]string{"tracker", "status"}, // ok, error
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"}, // insight, archive, cache, etc.
	)
)

// TrackEntryAppend increments the per-tracker append counter.
func TrackEntryAppend(tracker string) {
	EntriesAppendedTotal.WithLabelValues(tracker).Inc()
}

// TrackInsightGeneration records one generation cycle outcome.
func TrackInsightGeneration(outcome string) {
	InsightGenerationsTotal.WithLabelValues(outcome).Inc()
}

// TrackInsightCall times an external insight call.
func TrackInsightCall() *prometheus.Timer {
	return prometheus.NewTimer(InsightCallDuration)
}

// TrackArchiveWrite records one archive mirror write.
func TrackArchiveWrite(tracker, status string) {
	ArchiveWritesTotal.WithLabelValues(tracker, status).Inc()
}

// TrackError increments the error counter by type.
func TrackError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
