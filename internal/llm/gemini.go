package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a chat client on the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.User), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := candidateText(result)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// candidateText joins the text parts of the first candidate.
func candidateText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
