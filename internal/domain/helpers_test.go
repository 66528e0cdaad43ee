package domain

import (
	"errors"
	"os"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

var errWriteFailed = errors.New("disk full")

// recordingWriteCloser captures writes and optionally fails them.
type recordingWriteCloser struct {
	data     []byte
	closed   bool
	writeErr error
	closeErr error
}

func (w *recordingWriteCloser) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}

	w.data = append(w.data, p...)

	return len(p), nil
}

func (w *recordingWriteCloser) Close() error {
	w.closed = true
	return w.closeErr
}
