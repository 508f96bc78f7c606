package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"brewlog/internal/resilience/retry"
	"brewlog/internal/usecase/extract"
)

// OpenAI extracts roaster fields with the Chat Completions API in JSON mode.
type OpenAI struct {
	guard
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI extractor.
func NewOpenAI(cfg Config) *OpenAI {
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		guard:  newGuard(ProviderOpenAI, cfg),
		client: openai.NewClientWithConfig(conf),
		model:  model,
	}
}

func (o *OpenAI) Provider() string { return ProviderOpenAI }

func (o *OpenAI) ExtractRoaster(ctx context.Context, input string) (extract.Suggestion, error) {
	return o.run(ctx, input, o.complete)
}

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		if status := openAIStatus(err); status != 0 {
			return "", &retry.HTTPError{StatusCode: status, Message: http.StatusText(status), Err: err}
		}
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// openAIStatus returns the HTTP status carried by a client error, 0 if none.
func openAIStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
