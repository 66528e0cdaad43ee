// Package adapter contains the infrastructure adapters the reporting workflow
// depends on: source access, trace loading and output destinations.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	m "covsight.dev/pkg/covsight/internal/model"
)

// ErrInvalidUTF8 is returned by ReadText when a file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// SourceFSAdapter abstracts the filesystem reads the aggregation stage relies
// on. It hides direct `os` access so the workflow logic can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadText loads a file as UTF-8 text. Invalid encodings are an error.
	ReadText(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the concrete implementation of SourceFSAdapter
// over the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the trace store the user asked to report on
	return os.ReadFile(string(path))
}

// ReadText loads file contents and checks that they are valid UTF-8.
func (a *LocalSourceFSAdapter) ReadText(path m.Path) (string, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	return string(content), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
