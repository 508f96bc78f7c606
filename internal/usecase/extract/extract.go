// Package extract turns free text about a roaster, such as a pasted "about us"
// page, into suggested form fields with the help of an AI provider.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/utils/text"
)

// MaxInputLength is the longest text, in characters, accepted for extraction.
const MaxInputLength = 8000

var (
	// ErrExtractionDisabled is returned when no provider is configured.
	ErrExtractionDisabled = fmt.Errorf("extraction disabled: %w", entity.ErrUnavailable)

	// ErrEmptyInput is returned for blank text.
	ErrEmptyInput = &entity.ValidationError{Field: "text", Message: "text is required"}
)

// Suggestion holds the roaster fields found in the text. Fields the provider
// could not find are empty.
type Suggestion struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Homepage string `json:"homepage"`
}

// Trimmed returns s with surrounding whitespace removed from every field.
func (s Suggestion) Trimmed() Suggestion {
	return Suggestion{
		Name:     strings.TrimSpace(s.Name),
		Country:  strings.TrimSpace(s.Country),
		City:     strings.TrimSpace(s.City),
		Homepage: strings.TrimSpace(s.Homepage),
	}
}

// Extractor is one AI provider.
type Extractor interface {
	// Provider names the provider for logs and usage events, e.g. "claude".
	Provider() string
	ExtractRoaster(ctx context.Context, input string) (Suggestion, error)
}

// UsageRecorder accepts usage events without blocking.
// *telemetry.Recorder satisfies it.
type UsageRecorder interface {
	Record(ev entity.ExtractionUsage) bool
}

// Service runs extractions and records one usage event per provider call.
// A nil Extractor means extraction is switched off; a nil Usage drops events.
type Service struct {
	Extractor Extractor
	Usage     UsageRecorder
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s.Extractor != nil
}

// ExtractRoaster validates text and asks the provider for roaster fields.
// Returns ErrExtractionDisabled when no provider is configured.
func (s *Service) ExtractRoaster(ctx context.Context, input string) (Suggestion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Suggestion{}, ErrEmptyInput
	}
	if err := entity.ValidateLength("text", input, MaxInputLength); err != nil {
		return Suggestion{}, err
	}
	if !s.Enabled() {
		return Suggestion{}, ErrExtractionDisabled
	}

	start := time.Now()
	suggestion, err := s.Extractor.ExtractRoaster(ctx, input)
	duration := time.Since(start)

	s.record(entity.ExtractionUsage{
		Provider:    s.Extractor.Provider(),
		Success:     err == nil,
		Duration:    duration,
		InputLength: text.CountRunes(input),
		RecordedAt:  start.UTC(),
	})

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Suggestion{}, err
		}
		slog.WarnContext(ctx, "roaster extraction failed",
			slog.String("provider", s.Extractor.Provider()),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return Suggestion{}, fmt.Errorf("extract roaster: %w", err)
	}
	return suggestion.Trimmed(), nil
}

func (s *Service) record(ev entity.ExtractionUsage) {
	if s.Usage == nil {
		return
	}
	s.Usage.Record(ev)
}
