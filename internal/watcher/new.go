package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/podcast-flow/internal/logger"
)

const defaultSettle = 500 * time.Millisecond

// New creates a Watcher over inboxDir running at most maxConcurrent handlers
// at once.
func New(inboxDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inboxDir:      inboxDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settle:        defaultSettle,
	}, nil
}
