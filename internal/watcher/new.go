package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/tubedigest/internal/logger"
)

// settleDelay gives writers time to finish before the handler reads a file.
const settleDelay = 500 * time.Millisecond

// New watches inputDir and runs handler for created files accepted by
// accept, with at most maxConcurrent handlers in flight.
func New(inputDir string, accept Filter, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	if accept == nil {
		accept = func(string) bool { return true }
	}

	return &implWatcher{
		inputDir:      inputDir,
		accept:        accept,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settle:        settleDelay,
	}, nil
}
