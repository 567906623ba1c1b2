package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/genvault/genvault/config"
)

// ErrUpstream marks failures of the text-generation service so callers can
// distinguish them from persistence errors.
var ErrUpstream = errors.New("text generation failed")

// Client represents a client for the upstream text-generation service.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a new text-generation client.
func New(cfg *config.OpenAIConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// Generate sends the prompt as a single user message to the chat-completion
// endpoint and returns the first choice's content, trimmed of surrounding
// whitespace.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices returned", ErrUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
