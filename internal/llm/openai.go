package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a chat client. baseURL overrides the API endpoint
// for OpenAI-compatible gateways.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClientWithConfig(OpenAIConfig(apiKey, baseURL))}
}

// OpenAIConfig builds the go-openai config shared by chat and transcription.
func OpenAIConfig(apiKey, baseURL string) openai.ClientConfig {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
