package fetcher

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nguyentantai21042004/podcast-flow/internal/domain"
	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
	"github.com/nguyentantai21042004/podcast-flow/pkg/download"
)

func newTestFetcher() Fetcher {
	return New(download.New(nil, 8192, "podcast-flow-test"), "", logger.Nop())
}

func TestFetch(t *testing.T) {
	payload := bytes.Repeat([]byte{0x00}, 50000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Write(payload)
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "content", "podcast")
	ep := domain.Episode{EpisodeTitle: "Episode 1", AudioURL: server.URL + "/ep1.mp3"}

	got, err := newTestFetcher().Fetch(context.Background(), ep, dir)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	wantPath := filepath.Join(dir, "podcast_episode.mp3")
	if got.LocalPath != wantPath {
		t.Errorf("LocalPath = %q, want %q", got.LocalPath, wantPath)
	}
	info, err := os.Stat(wantPath)
	if err != nil {
		t.Fatalf("stat episode: %v", err)
	}
	if info.Size() != int64(len(payload)) {
		t.Errorf("file size = %d, want declared Content-Length %d", info.Size(), len(payload))
	}
	if got.SizeBytes != int64(len(payload)) {
		t.Errorf("SizeBytes = %d, want %d", got.SizeBytes, len(payload))
	}
	if ep.LocalPath != "" {
		t.Error("Fetch() must not modify the caller's episode")
	}

	// Existing directory and file are fine on a second run.
	if _, err := newTestFetcher().Fetch(context.Background(), ep, dir); err != nil {
		t.Fatalf("second Fetch() error = %v", err)
	}
}

func TestFetchNoAudioURL(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestFetcher().Fetch(context.Background(), domain.Episode{EpisodeTitle: "Episode 1"}, dir)
	if !errors.Is(err, ErrNoAudioURL) {
		t.Fatalf("Fetch() error = %v, want ErrNoAudioURL", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultFileName)); !os.IsNotExist(err) {
		t.Errorf("no file should be written, stat err = %v", err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	_, err := newTestFetcher().Fetch(context.Background(), domain.Episode{AudioURL: server.URL}, dir)

	var statusErr *download.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Fetch() error = %v, want *download.StatusError", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultFileName)); !os.IsNotExist(err) {
		t.Errorf("no file should be finalized, stat err = %v", err)
	}
}

func TestFetchCustomFileName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0x00, 0x00})
	}))
	defer server.Close()

	dir := t.TempDir()
	f := New(download.New(nil, 0, ""), "latest.mp3", logger.Nop())
	got, err := f.Fetch(context.Background(), domain.Episode{AudioURL: server.URL}, dir)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got.LocalPath != filepath.Join(dir, "latest.mp3") {
		t.Errorf("LocalPath = %q", got.LocalPath)
	}
}
