package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ModelFileName is the ggml file name whisper.cpp uses for a model size.
func ModelFileName(size string) string {
	return "ggml-" + size + ".bin"
}

func (t *implWhisperCpp) modelPath() string {
	return filepath.Join(t.cfg.ModelDir, ModelFileName(t.cfg.Model))
}

// EnsureModel downloads the model file into the model directory unless it is
// already there.
func (t *implWhisperCpp) EnsureModel(ctx context.Context) error {
	t.modelMu.Lock()
	defer t.modelMu.Unlock()

	path := t.modelPath()
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		t.logger.Debug(ctx, "Whisper model already present: %s", path)
		return nil
	}

	if err := os.MkdirAll(t.cfg.ModelDir, 0755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	url := strings.TrimRight(t.cfg.ModelBaseURL, "/") + "/" + ModelFileName(t.cfg.Model)
	t.logger.Info(ctx, "Downloading the Whisper %s model: %s", t.cfg.Model, url)

	n, err := t.downloader.ToFile(ctx, url, path)
	if err != nil {
		return fmt.Errorf("download model: %w", err)
	}

	t.logger.Info(ctx, "Whisper model saved: %s (%d bytes)", path, n)
	return nil
}
