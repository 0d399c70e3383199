package watcher

import "context"

// Watcher monitors an inbox directory for dropped caption files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one caption file picked up from the inbox.
type EventHandler func(ctx context.Context, path string) error
