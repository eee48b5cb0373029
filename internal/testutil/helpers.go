// --- START OF FINAL REVISED FILE internal/testutil/helpers.go ---
package testutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateDummyFile creates a file with the specified content at the given path,
// ensuring parent directories exist.
func CreateDummyFile(t *testing.T, path string, content string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	dir := filepath.Dir(fullPath)
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err, "Failed to create directory %s for dummy file", dir)
	err = os.WriteFile(fullPath, []byte(content), 0644)
	require.NoError(t, err, "Failed to write dummy file %s", fullPath)
}

// CreateDummyDir ensures a directory exists at the given path, creating parents if needed.
func CreateDummyDir(t *testing.T, path string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	err := os.MkdirAll(fullPath, 0755)
	require.NoError(t, err, "Failed to create dummy directory %s", fullPath)
}

// CreateCucumberTree lays out a typical cucumber output directory under root:
// a.json, sub/b.json and notes.txt. It returns root.
func CreateCucumberTree(t *testing.T, root string) string {
	t.Helper()
	CreateDummyFile(t, filepath.Join(root, "a.json"), `[{"id":"feature-a"}]`)
	CreateDummyFile(t, filepath.Join(root, "sub", "b.json"), `[{"id":"feature-b"}]`)
	CreateDummyFile(t, filepath.Join(root, "notes.txt"), "not a report")
	return root
}

// SyncBuffer is a bytes.Buffer safe for concurrent writes from log handlers.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestLogHandler returns a debug-level text handler writing to a fresh SyncBuffer.
func NewTestLogHandler() (slog.Handler, *SyncBuffer) {
	buf := &SyncBuffer{}
	return slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}), buf
}

// --- END OF FINAL REVISED FILE internal/testutil/helpers.go ---
