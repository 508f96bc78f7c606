package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests.
	// Labels: list (roasters, roasts, ...), status (HTTP status code), page_range (1-10, 11-50, ..., all)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_requests_total",
			Help: "Total number of paginated list requests",
		},
		[]string{"list", "status", "page_range"},
	)

	// DurationSeconds tracks list request duration distribution.
	// Labels: list, operation (handler, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "list_duration_seconds",
			Help:    "List request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"list", "operation"},
	)

	// ClampedTotal counts requests whose page was beyond the last page and got pulled back.
	ClampedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_page_clamped_total",
			Help: "Total number of list requests whose page was clamped to the last page",
		},
		[]string{"list"},
	)

	// ErrorsTotal counts list errors by type.
	// Labels: list, type (validation, database, render)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_errors_total",
			Help: "Total number of list errors",
		},
		[]string{"list", "type"},
	)
)

// RecordRequest records a list request metric.
func RecordRequest(list string, statusCode int, w Window) {
	RequestsTotal.WithLabelValues(
		list,
		strconv.Itoa(statusCode),
		getPageRangeBucket(w),
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(list, operation string, duration float64) {
	DurationSeconds.WithLabelValues(list, operation).Observe(duration)
}

// RecordClamped records that a requested page was pulled back into range.
func RecordClamped(list string) {
	ClampedTotal.WithLabelValues(list).Inc()
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database", "render"
func RecordError(list, errorType string) {
	ErrorsTotal.WithLabelValues(list, errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a window.
func getPageRangeBucket(w Window) string {
	if w.ShowingAll {
		return "all"
	}
	switch page := w.Page; {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
