// Package metrics provides Prometheus instrumentation for the matching
// service. It exposes counters for match outcomes, a gauge for the waiting
// pool size, and a histogram for time-to-match.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MatchesTotal counts finalized pairings.
	MatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pairprep_matches_total",
		Help: "Total number of finalized pairings",
	})

	// MatchTimeoutsTotal counts submit calls that waited out the full budget.
	MatchTimeoutsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pairprep_match_timeouts_total",
		Help: "Total number of match requests that timed out waiting",
	})

	// MatchCancellationsTotal counts explicit cancellations of waiting requests.
	MatchCancellationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pairprep_match_cancellations_total",
		Help: "Total number of match requests canceled while waiting",
	})

	// FinalizationFailuresTotal counts pairings dropped because the question
	// fetch or session registration failed.
	FinalizationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pairprep_finalization_failures_total",
		Help: "Total number of committed pairings dropped by finalization failures",
	})

	// QueueSize tracks the current number of users in the waiting pool.
	QueueSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pairprep_match_queue_size",
		Help: "Current number of users in the waiting pool",
	})

	// MatchDuration records the time from match request to match found.
	MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pairprep_match_duration_seconds",
		Help:    "Time from match request to match found",
		Buckets: []float64{.1, .5, 1, 2, 5, 10, 15, 20, 25, 30},
	})
)

func init() {
	prometheus.MustRegister(
		MatchesTotal,
		MatchTimeoutsTotal,
		MatchCancellationsTotal,
		FinalizationFailuresTotal,
		QueueSize,
		MatchDuration,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
