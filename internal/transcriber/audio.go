package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// extractAudio converts the episode to the 16kHz mono WAV whisper.cpp reads.
func (t *implWhisperCpp) extractAudio(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_16k.wav"

	t.logger.Info(ctx, "Converting audio for transcription: %s", audioPath)

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	t.logger.Debug(ctx, "Audio converted: %s", wavPath)
	return wavPath, nil
}
