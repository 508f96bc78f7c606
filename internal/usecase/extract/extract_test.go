package extract_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewlog/internal/domain/entity"
	"brewlog/internal/usecase/extract"
)

type stubExtractor struct {
	got        string
	suggestion extract.Suggestion
	err        error
}

func (s *stubExtractor) Provider() string { return "stub" }

func (s *stubExtractor) ExtractRoaster(_ context.Context, text string) (extract.Suggestion, error) {
	s.got = text
	return s.suggestion, s.err
}

type captureUsage struct {
	events []entity.ExtractionUsage
}

func (c *captureUsage) Record(ev entity.ExtractionUsage) bool {
	c.events = append(c.events, ev)
	return true
}

func TestService_ExtractRoaster(t *testing.T) {
	ext := &stubExtractor{suggestion: extract.Suggestion{Name: " Onyx Coffee Lab ", Country: "USA", City: "Rogers"}}
	usage := &captureUsage{}
	svc := &extract.Service{Extractor: ext, Usage: usage}

	got, err := svc.ExtractRoaster(context.Background(), "  Onyx roasts in Rogers, Arkansas.  ")
	require.NoError(t, err)
	assert.Equal(t, extract.Suggestion{Name: "Onyx Coffee Lab", Country: "USA", City: "Rogers"}, got)
	assert.Equal(t, "Onyx roasts in Rogers, Arkansas.", ext.got)

	require.Len(t, usage.events, 1)
	ev := usage.events[0]
	assert.Equal(t, "stub", ev.Provider)
	assert.True(t, ev.Success)
	assert.Equal(t, len("Onyx roasts in Rogers, Arkansas."), ev.InputLength)
	assert.False(t, ev.RecordedAt.IsZero())
}

func TestService_ExtractRoaster_ProviderFailure(t *testing.T) {
	ext := &stubExtractor{err: errors.New("HTTP 529: overloaded")}
	usage := &captureUsage{}
	svc := &extract.Service{Extractor: ext, Usage: usage}

	_, err := svc.ExtractRoaster(context.Background(), "Tim Wendelboe, Oslo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract roaster")

	require.Len(t, usage.events, 1)
	assert.False(t, usage.events[0].Success)
}

func TestService_ExtractRoaster_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "blank", text: " \n\t "},
		{name: "too long", text: strings.Repeat("é", extract.MaxInputLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &stubExtractor{}
			svc := &extract.Service{Extractor: ext}

			_, err := svc.ExtractRoaster(context.Background(), tt.text)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)
			assert.Empty(t, ext.got)
		})
	}
}

func TestService_ExtractRoaster_Disabled(t *testing.T) {
	svc := &extract.Service{}
	assert.False(t, svc.Enabled())

	_, err := svc.ExtractRoaster(context.Background(), "La Cabra, Aarhus")
	assert.ErrorIs(t, err, extract.ErrExtractionDisabled)
	assert.ErrorIs(t, err, entity.ErrUnavailable)
}

func TestService_ExtractRoaster_NilUsage(t *testing.T) {
	svc := &extract.Service{Extractor: &stubExtractor{suggestion: extract.Suggestion{Name: "Onyx"}}}

	got, err := svc.ExtractRoaster(context.Background(), "Onyx")
	require.NoError(t, err)
	assert.Equal(t, "Onyx", got.Name)
}
