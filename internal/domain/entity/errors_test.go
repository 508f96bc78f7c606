package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "simple validation error",
			field:    "homepage",
			message:  "invalid format",
			expected: "validation error on field 'homepage': invalid format",
		},
		{
			name:     "required field error",
			field:    "name",
			message:  "required",
			expected: "validation error on field 'name': required",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	var err error = &ValidationError{Field: "name", Message: "name is required"}
	wrapped := fmt.Errorf("create roaster: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.False(t, errors.Is(wrapped, ErrNotFound))

	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{name: "not found", err: ErrNotFound, msg: "entity not found"},
		{name: "invalid input", err: ErrInvalidInput, msg: "invalid input"},
		{name: "conflict", err: ErrConflict, msg: "conflict"},
		{name: "unavailable", err: ErrUnavailable, msg: "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.True(t, errors.Is(fmt.Errorf("wrap: %w", tt.err), tt.err))
		})
	}
}
