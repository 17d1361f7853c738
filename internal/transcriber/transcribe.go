package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var ErrEmptyTranscript = errors.New("transcription produced no text")

// Transcribe runs whisper.cpp over the episode and returns the transcript.
// The timeout covers conversion and inference, not the model download.
func (t *implWhisperCpp) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := t.EnsureModel(ctx); err != nil {
		return "", err
	}

	modelPath, err := filepath.Abs(t.modelPath())
	if err != nil {
		return "", fmt.Errorf("resolve model path: %w", err)
	}

	if t.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(t.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	wavPath, err := t.extractAudio(ctx, audioPath)
	if err != nil {
		return "", err
	}
	defer t.removeTemp(ctx, wavPath)

	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	workDir := filepath.Dir(wavPath)

	t.logger.Info(ctx, "Starting podcast transcription with the %s model (%d threads, gpu=%t): %s",
		t.cfg.Model, t.cfg.Threads, t.cfg.UseGPU(), audioPath)
	start := time.Now()

	// Runs in the episode directory; -otxt writes <prefix>.txt there with
	// one segment per line.
	args := []string{
		"-m", modelPath,
		"-f", filepath.Base(wavPath),
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", filepath.Base(outputPrefix),
	}
	if !t.cfg.UseGPU() {
		args = append(args, "--no-gpu")
	}

	if _, err := t.executor.ExecuteInDir(ctx, workDir, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer t.removeTemp(ctx, txtPath)

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := joinSegments(string(data))
	if text == "" {
		return "", ErrEmptyTranscript
	}

	t.logger.Info(ctx, "Podcast transcription completed in %s (%d characters)", time.Since(start), len(text))
	return text, nil
}

func (t *implWhisperCpp) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

// joinSegments flattens whisper's per-segment lines into one string.
func joinSegments(raw string) string {
	lines := strings.Split(raw, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
