// Package extractor implements extract.Extractor on top of hosted language
// models: Anthropic Claude and OpenAI. Every provider call goes through a
// token-bucket limiter, a circuit breaker and a short retry loop.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"brewlog/internal/domain/entity"
	"brewlog/internal/resilience/circuitbreaker"
	"brewlog/internal/resilience/retry"
	"brewlog/internal/usecase/extract"
)

// Provider names accepted by New.
const (
	ProviderNone   = "none"
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// DefaultTimeout bounds one extraction, retries included.
const DefaultTimeout = 30 * time.Second

// Config selects and tunes a provider.
type Config struct {
	Provider string
	APIKey   string
	// Model overrides the provider's default model.
	Model string
	// BaseURL overrides the provider endpoint, e.g. for a proxy.
	BaseURL string
	Timeout time.Duration
	// RatePerSecond caps outbound calls; zero or less means unlimited.
	RatePerSecond float64
	// Retry defaults to retry.ExtractorConfig().
	Retry   retry.Config
	Metrics MetricsRecorder
}

// New returns the extractor cfg names. Provider "none" (or empty) returns a
// nil Extractor, which switches extraction off.
func New(cfg Config) (extract.Extractor, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderClaude, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unknown extractor provider %q", cfg.Provider)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("extractor provider %q requires an API key", provider)
	}
	if provider == ProviderClaude {
		return NewClaude(cfg), nil
	}
	return NewOpenAI(cfg), nil
}

// guard runs one provider call with rate limiting, circuit breaking,
// retries, a timeout and metrics.
type guard struct {
	provider string
	limiter  *rate.Limiter
	breaker  *circuitbreaker.CircuitBreaker
	retry    retry.Config
	timeout  time.Duration
	metrics  MetricsRecorder
}

func newGuard(provider string, cfg Config) guard {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	g := guard{
		provider: provider,
		limiter:  rate.NewLimiter(limit, 1),
		breaker:  circuitbreaker.New(circuitbreaker.ExtractorConfig(provider)),
		retry:    cfg.Retry,
		timeout:  cfg.Timeout,
		metrics:  cfg.Metrics,
	}
	if g.retry.MaxAttempts <= 0 {
		g.retry = retry.ExtractorConfig()
	}
	if g.timeout <= 0 {
		g.timeout = DefaultTimeout
	}
	if g.metrics == nil {
		g.metrics = PrometheusMetrics{}
	}
	return g
}

// CircuitState reports the provider breaker state: "closed", "half-open" or "open".
func (g guard) CircuitState() string {
	return g.breaker.State().String()
}

// completion sends prompt to the provider and returns its text answer.
type completion func(ctx context.Context, prompt string) (string, error)

func (g guard) run(ctx context.Context, input string, call completion) (extract.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt, cut := buildPrompt(input)
	if cut {
		g.metrics.RecordTruncated(g.provider)
		slog.WarnContext(ctx, "extraction input truncated",
			slog.String("provider", g.provider),
			slog.Int("limit", maxPromptInput))
	}

	suggestion, err := retry.Do(ctx, g.retry, func() (extract.Suggestion, error) {
		if err := g.limiter.Wait(ctx); err != nil {
			return extract.Suggestion{}, fmt.Errorf("rate limit wait: %w", err)
		}
		return circuitbreaker.Call(g.breaker, func() (extract.Suggestion, error) {
			return g.attempt(ctx, prompt, call)
		})
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		slog.WarnContext(ctx, "extractor circuit breaker open, request rejected",
			slog.String("provider", g.provider),
			slog.String("state", g.breaker.State().String()))
		return extract.Suggestion{}, fmt.Errorf("%s: %w: %w", g.provider, entity.ErrUnavailable, err)
	}
	if err != nil {
		return extract.Suggestion{}, fmt.Errorf("%s: %w", g.provider, err)
	}
	return suggestion, nil
}

func (g guard) attempt(ctx context.Context, prompt string, call completion) (extract.Suggestion, error) {
	start := time.Now()
	answer, err := call(ctx, prompt)
	duration := time.Since(start)
	if err != nil {
		g.metrics.RecordCall(g.provider, "error", duration)
		slog.ErrorContext(ctx, "extraction call failed",
			slog.String("provider", g.provider),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return extract.Suggestion{}, err
	}

	suggestion, err := parseSuggestion(answer)
	if err != nil {
		g.metrics.RecordCall(g.provider, "unparseable", duration)
		return extract.Suggestion{}, err
	}
	g.metrics.RecordCall(g.provider, "success", duration)
	slog.InfoContext(ctx, "extraction completed",
		slog.String("provider", g.provider),
		slog.Bool("found_name", suggestion.Name != ""),
		slog.Duration("duration", duration))
	return suggestion, nil
}
