// Package metrics holds the Prometheus instruments for the procedure API.
// They are exported at /metrics when PROMETHEUS_ENABLED is set.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProcedureCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placehub_procedure_calls_total",
			Help: "Total number of procedure calls",
		},
		[]string{"procedure", "status"},
	)

	ProcedureDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "placehub_procedure_duration_seconds",
			Help:    "Duration of procedure calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "placehub_requests_in_flight",
			Help: "Number of procedure calls currently being served",
		},
	)

	ViewIncrements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placehub_view_increments_total",
			Help: "Total number of recorded views",
		},
		[]string{"resource"}, // "place", "shared_list"
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placehub_rate_limited_total",
			Help: "Requests rejected by the view rate limiter",
		},
		[]string{"procedure"},
	)
)

// RecordProcedure records one finished procedure call.
func RecordProcedure(procedure string, status int, duration time.Duration) {
	if procedure == "" {
		procedure = "unmatched"
	}
	ProcedureCallsTotal.WithLabelValues(procedure, strconv.Itoa(status)).Inc()
	ProcedureDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight procedure calls
func TrackActiveRequest(inc bool) {
	if inc {
		ActiveRequests.Inc()
	} else {
		ActiveRequests.Dec()
	}
}

func RecordView(resource string) {
	ViewIncrements.WithLabelValues(resource).Inc()
}

func RecordRateLimited(procedure string) {
	RateLimited.WithLabelValues(procedure).Inc()
}
