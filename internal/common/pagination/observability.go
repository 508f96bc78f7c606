package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs an inbound list request with structured fields.
func LogRequest[K SortKey[K]](logger *slog.Logger, list string, req ListRequest[K], search string) {
	logger.Info("List request",
		"list", list,
		"page", req.Page(),
		"page_size", req.PageSize().QueryValue(),
		"sort", req.SortKey().QueryValue(),
		"dir", req.SortDirection().QueryValue(),
		"has_search", search != "")
}

// LogResponse logs the page that was actually served with duration and status.
func LogResponse(logger *slog.Logger, list string, w Window, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("List response",
		"list", list,
		"page", w.Page,
		"page_size", w.PageSize,
		"showing_all", w.ShowingAll,
		"total", w.Total,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a list error with structured fields.
func LogError[K SortKey[K]](logger *slog.Logger, list string, req ListRequest[K], err error, errorType string) {
	logger.Error("List error",
		"list", list,
		"page", req.Page(),
		"page_size", req.PageSize().QueryValue(),
		"error", err.Error(),
		"error_type", errorType)
}
