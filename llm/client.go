// Package llm is the call boundary to the text-completion provider. One
// request, one response; retries and streaming belong to callers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/akum103/ats-resume-matcher/config"
	"github.com/akum103/ats-resume-matcher/utils"
)

// ErrEmptyResponse is returned when the provider answers without any
// completion choice. Safe to retry once.
var ErrEmptyResponse = errors.New("completion provider returned no choices")

// ProviderError carries the provider status and message for auth, rate-limit
// and network failures
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("completion provider error: %s", e.Message)
}

// Options selects the model and sampling temperature for one completion
type Options struct {
	Model       string
	Temperature float64
}

// Completer is the boundary the pipeline depends on; tests substitute mocks
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// Client wraps the OpenAI chat completions API
type Client struct {
	client *openai.Client
}

// NewClient creates a new completion client from the application config
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithHTTPClient(utils.NewHTTPClient(timeout)),
		// Retry policy belongs to callers, not this adapter.
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}

	return &Client{client: openai.NewClient(opts...)}
}

// Complete sends the prompt as a single user-role message and returns the
// full reply text
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(opts.Model),
		Temperature: openai.F(opts.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return "", &ProviderError{Message: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
