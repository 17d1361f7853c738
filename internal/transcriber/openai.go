package transcriber

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func (t *implOpenAI) EnsureModel(ctx context.Context) error {
	return nil
}

// Transcribe uploads the episode to the hosted Whisper endpoint.
func (t *implOpenAI) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.logger.Info(ctx, "Starting hosted podcast transcription: %s", audioPath)
	start := time.Now()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcribe: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrEmptyTranscript
	}

	t.logger.Info(ctx, "Podcast transcription completed in %s (%d characters)", time.Since(start), len(text))
	return text, nil
}
