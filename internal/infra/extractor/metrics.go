package extractor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records provider call outcomes. Tests inject a fake.
type MetricsRecorder interface {
	RecordCall(provider, status string, duration time.Duration)
	RecordTruncated(provider string)
}

var (
	extractorCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractor_calls_total",
			Help: "Total number of AI extraction provider calls",
		},
		[]string{"provider", "status"}, // status: success|error|unparseable
	)

	extractorCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "extractor_call_duration_seconds",
			Help:    "AI extraction provider call duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	extractorTruncatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractor_input_truncated_total",
			Help: "Total number of extraction inputs truncated before sending",
		},
		[]string{"provider"},
	)
)

// PrometheusMetrics implements MetricsRecorder with the package's Prometheus collectors.
type PrometheusMetrics struct{}

func (PrometheusMetrics) RecordCall(provider, status string, duration time.Duration) {
	extractorCallsTotal.WithLabelValues(provider, status).Inc()
	extractorCallDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (PrometheusMetrics) RecordTruncated(provider string) {
	extractorTruncatedTotal.WithLabelValues(provider).Inc()
}
