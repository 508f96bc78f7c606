package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("BREWLOG_TEST_STRING", "  value ")
	assert.Equal(t, "value", GetEnvString("BREWLOG_TEST_STRING", "default"))

	t.Setenv("BREWLOG_TEST_STRING", "")
	assert.Equal(t, "default", GetEnvString("BREWLOG_TEST_STRING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "42", want: 42},
		{name: "negative", value: "-3", want: -3},
		{name: "not set", value: "", want: 7},
		{name: "garbage", value: "abc", want: 7},
		{name: "trailing text", value: "12abc", want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BREWLOG_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("BREWLOG_TEST_INT", 7))
		})
	}
}

func TestGetEnvPositiveInt(t *testing.T) {
	t.Setenv("BREWLOG_TEST_INT", "0")
	assert.Equal(t, 64, GetEnvPositiveInt("BREWLOG_TEST_INT", 64))

	t.Setenv("BREWLOG_TEST_INT", "128")
	assert.Equal(t, 128, GetEnvPositiveInt("BREWLOG_TEST_INT", 64))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("BREWLOG_TEST_FLOAT", "0.5")
	assert.Equal(t, 0.5, GetEnvFloat("BREWLOG_TEST_FLOAT", 1))

	t.Setenv("BREWLOG_TEST_FLOAT", "-1")
	assert.Equal(t, 1.0, GetEnvFloat("BREWLOG_TEST_FLOAT", 1))

	t.Setenv("BREWLOG_TEST_FLOAT", "fast")
	assert.Equal(t, 1.0, GetEnvFloat("BREWLOG_TEST_FLOAT", 1))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("BREWLOG_TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("BREWLOG_TEST_DURATION", time.Second))

	t.Setenv("BREWLOG_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("BREWLOG_TEST_DURATION", time.Second))

	t.Setenv("BREWLOG_TEST_DURATION", "-5s")
	assert.Equal(t, -5*time.Second, GetEnvDuration("BREWLOG_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvPositiveDuration("BREWLOG_TEST_DURATION", time.Second))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("BREWLOG_TEST_BOOL", "false")
	assert.False(t, GetEnvBool("BREWLOG_TEST_BOOL", true))

	t.Setenv("BREWLOG_TEST_BOOL", "1")
	assert.True(t, GetEnvBool("BREWLOG_TEST_BOOL", false))

	t.Setenv("BREWLOG_TEST_BOOL", "sometimes")
	assert.True(t, GetEnvBool("BREWLOG_TEST_BOOL", true))
}
