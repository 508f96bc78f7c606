package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the usage event queue
var (
	eventsEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telemetry_events_enqueued_total",
			Help: "Total number of usage events accepted into the queue",
		},
	)

	eventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_events_dropped_total",
			Help: "Total number of usage events dropped before storage",
		},
		[]string{"reason"}, // reason: queue_full|closed
	)

	eventsStoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telemetry_events_stored_total",
			Help: "Total number of usage events stored",
		},
	)

	eventsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_events_failed_total",
			Help: "Total number of usage events whose storage failed",
		},
		[]string{"reason"}, // reason: error|panic
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "telemetry_queue_depth",
			Help: "Number of usage events waiting in the queue",
		},
	)
)

// RecordDropped increments the dropped counter for reason.
func RecordDropped(reason string) {
	eventsDroppedTotal.WithLabelValues(reason).Inc()
}

// RecordFailed increments the failed counter for reason.
func RecordFailed(reason string) {
	eventsFailedTotal.WithLabelValues(reason).Inc()
}
