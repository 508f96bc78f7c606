package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"brewlog/internal/handler/http/pathutil"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/handler/http/responsewriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration buckets run from 5ms to 10s so p95 and p99 stay
	// measurable for both fragment swaps and extraction calls.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// httpResponsesByKind splits responses by what the negotiator produced.
	// Labels: client (browser, hypermedia), kind (html, json, redirect, empty, other)
	httpResponsesByKind = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_responses_by_kind_total",
			Help: "Total number of HTTP responses by client type and response kind",
		},
		[]string{"client", "kind"},
	)
)

// MetricsMiddleware records HTTP request metrics. Paths are normalized so
// every roaster ID shares one label.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(r.ContentLength))
		}

		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.StatusCode())
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.BytesWritten()))
		httpResponsesByKind.WithLabelValues(clientKind(r), responseKind(rw)).Inc()
	})
}

func clientKind(r *http.Request) string {
	if respond.IsHypermedia(r) {
		return "hypermedia"
	}
	return "browser"
}

func responseKind(rw *responsewriter.ResponseWriter) string {
	code := rw.StatusCode()
	switch {
	case code >= 300 && code < 400:
		return "redirect"
	case rw.BytesWritten() == 0:
		return "empty"
	}
	ct := rw.Header().Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "text/html"):
		return "html"
	case strings.HasPrefix(ct, "application/json"):
		return "json"
	default:
		return "other"
	}
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
