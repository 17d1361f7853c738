package watcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
)

// FeedExt is the extension of inbox files holding a feed URL.
const FeedExt = ".feed"

// ErrNoFeedURL is returned for an inbox file without a URL line.
var ErrNoFeedURL = errors.New("no feed url in file")

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settle        time.Duration
	wg            sync.WaitGroup
}

// Start monitors the inbox until ctx is cancelled, then waits for running
// handlers.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Drop a %s file containing a feed URL to process its latest episode", FeedExt)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isFeedFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-feed file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New feed file detected: %s", event.Name)

			// Let the writer finish
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

			feedURL, err := readFeedURL(event.Name)
			if err != nil {
				w.logger.Error(ctx, "Failed to read %s: %v", event.Name, err)
				continue
			}

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(feedURL, sourcePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, feedURL, sourcePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", feedURL, err)
					}
				}(feedURL, event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isFeedFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), FeedExt)
}

// readFeedURL returns the first line of path that is neither blank nor a
// # comment.
func readFeedURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", ErrNoFeedURL
}
