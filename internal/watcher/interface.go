package watcher

import "context"

// Watcher defines the interface for inbox monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one feed URL dropped into the inbox. sourcePath is the
// *.feed file it was read from.
type EventHandler func(ctx context.Context, feedURL, sourcePath string) error
