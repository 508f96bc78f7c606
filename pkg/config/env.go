// Package config provides environment variable helpers that never fail:
// a missing value yields the default, an unusable one yields the default and
// a slog warning.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Example:
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an integer.
// Unparsable values log a warning and return the default.
func GetEnvInt(key string, defaultValue int) int {
	valueStr := GetEnvString(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		warnFallback(key, valueStr, strconv.Itoa(defaultValue), err.Error())
		return defaultValue
	}
	return value
}

// GetEnvPositiveInt is GetEnvInt restricted to values greater than zero.
//
// Example:
//
//	size := GetEnvPositiveInt("TELEMETRY_QUEUE_SIZE", 64)
func GetEnvPositiveInt(key string, defaultValue int) int {
	value := GetEnvInt(key, defaultValue)
	if value <= 0 {
		warnFallback(key, strconv.Itoa(value), strconv.Itoa(defaultValue), "must be positive")
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a bool.
// Accepts the forms strconv.ParseBool does; anything else logs a warning
// and returns the default.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := GetEnvString(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		warnFallback(key, valueStr, strconv.FormatBool(defaultValue), err.Error())
		return defaultValue
	}
	return value
}

// GetEnvFloat returns the value of an environment variable as a float64.
// Unparsable or negative values log a warning and return the default.
func GetEnvFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnvString(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || value < 0 {
		reason := "must not be negative"
		if err != nil {
			reason = err.Error()
		}
		warnFallback(key, valueStr, strconv.FormatFloat(defaultValue, 'g', -1, 64), reason)
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
//
// The value must be parseable by time.ParseDuration (e.g., "1m", "30s", "1h30m").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnvString(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		warnFallback(key, valueStr, defaultValue.String(), err.Error())
		return defaultValue
	}
	return value
}

// GetEnvPositiveDuration is GetEnvDuration restricted to values greater than zero.
func GetEnvPositiveDuration(key string, defaultValue time.Duration) time.Duration {
	value := GetEnvDuration(key, defaultValue)
	if value <= 0 {
		warnFallback(key, value.String(), defaultValue.String(), "must be positive")
		return defaultValue
	}
	return value
}

func warnFallback(key, value, defaultValue, reason string) {
	slog.Warn("invalid value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", defaultValue),
		slog.String("error", reason))
}
