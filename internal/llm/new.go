package llm

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/podcast-flow/internal/config"
)

// New builds the Client for the configured provider.
func New(ctx context.Context, cfg config.LLMConfig, apiKey string) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(apiKey, cfg.BaseURL), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
