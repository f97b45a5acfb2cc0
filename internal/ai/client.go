package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrNotConfigured = errors.New("ai client is not configured")

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient returns ErrNotConfigured when baseURL or apiKey is empty.
func NewClient(baseURL, apiKey, model string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}

	client := openai.NewClient(
		option.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/v1/"),
		option.WithAPIKey(apiKey),
	)

	return &Client{client: &client, model: model}, nil
}

// Complete sends one system and one user message and returns the first choice.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
