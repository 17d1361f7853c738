package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
)

var ErrNoAudioURL = errors.New("episode has no audio URL")

// Fetch streams ep.AudioURL to <dir>/<fileName> and returns a copy of ep
// with LocalPath, SizeBytes and Duration filled in.
func (f *implFetcher) Fetch(ctx context.Context, ep domain.Episode, dir string) (domain.Episode, error) {
	if ep.AudioURL == "" {
		return ep, ErrNoAudioURL
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return ep, fmt.Errorf("create episode dir: %w", err)
	}

	dst := filepath.Join(dir, f.fileName)
	f.logger.Info(ctx, "Downloading the podcast episode: %s -> %s", ep.AudioURL, dst)

	start := time.Now()
	n, err := f.downloader.ToFile(ctx, ep.AudioURL, dst)
	if err != nil {
		return ep, fmt.Errorf("download episode: %w", err)
	}

	ep.LocalPath = dst
	ep.SizeBytes = n

	if dur, err := mp3Duration(dst); err != nil {
		f.logger.Warn(ctx, "Failed to probe MP3 duration of %s: %v", dst, err)
	} else {
		ep.Duration = dur
	}

	f.logger.Info(ctx, "Podcast episode downloaded: %d bytes, %s audio, took %s", n, ep.Duration, time.Since(start))
	return ep, nil
}
