package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"brewlog/internal/resilience/retry"
	"brewlog/internal/usecase/extract"
)

const claudeMaxTokens = 512

// Claude extracts roaster fields with Anthropic's Messages API.
type Claude struct {
	guard
	client anthropic.Client
	model  string
}

// NewClaude creates a Claude extractor. Retries are handled by the guard,
// so the SDK's own retries are switched off.
func NewClaude(cfg Config) *Claude {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}
	return &Claude{
		guard:  newGuard(ProviderClaude, cfg),
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (c *Claude) Provider() string { return ProviderClaude }

func (c *Claude) ExtractRoaster(ctx context.Context, input string) (extract.Suggestion, error) {
	return c.run(ctx, input, c.complete)
}

func (c *Claude) complete(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &retry.HTTPError{StatusCode: apiErr.StatusCode, Message: http.StatusText(apiErr.StatusCode), Err: err}
		}
		return "", fmt.Errorf("claude api error: %w", err)
	}

	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			return tb.Text, nil
		}
	}
	return "", fmt.Errorf("claude api returned no text block")
}
