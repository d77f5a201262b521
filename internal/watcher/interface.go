package watcher

import "context"

// Watcher reports new drop-folder files to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one newly created file.
type EventHandler func(ctx context.Context, filePath string) error

// Filter reports whether a created file should be handed to the EventHandler.
type Filter func(path string) bool
