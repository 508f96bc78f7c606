package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"brewlog/internal/handler/http/requestid"
)

// Options configures New. Zero values mean JSON at info level on stdout.
type Options struct {
	// Format is "json" or "text".
	Format string
	// Level is one of debug, info, warn, error.
	Level  string
	Writer io.Writer
}

// redacted replaces the value of any attribute whose key looks secret.
const redacted = "[REDACTED]"

var secretKeyParts = []string{"api_key", "apikey", "secret", "password", "token"}

// New creates a structured logger. Source locations are attached at debug
// level.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	level := ParseLevel(opts.Level)
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// NewLogger creates a logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger() *slog.Logger {
	return New(Options{Format: os.Getenv("LOG_FORMAT"), Level: os.Getenv("LOG_LEVEL")})
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	for _, part := range secretKeyParts {
		if strings.Contains(key, part) {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}

// WithRequestID returns logger with the request ID from ctx attached, or
// logger itself when ctx carries none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// FromContext retrieves the logger stored by WithLogger, or the default
// logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
