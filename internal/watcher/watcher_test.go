package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tubedigest/internal/logger"
)

func TestWatcherDispatchesAcceptedFiles(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)

	accept := func(path string) bool { return strings.HasSuffix(path, ".txt") }
	handler := func(ctx context.Context, path string) error {
		seen <- filepath.Base(path)
		return nil
	}

	w, err := New(dir, accept, handler, logger.Nop(), 1)
	require.NoError(t, err)
	w.(*implWatcher).settle = 10 * time.Millisecond
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.mp4"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "talk.txt"), []byte("0:01 hello"), 0644))

	select {
	case name := <-seen:
		assert.Equal(t, "talk.txt", name)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, seen)
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, nil, logger.Nop(), 1)
	assert.Error(t, err)
}
