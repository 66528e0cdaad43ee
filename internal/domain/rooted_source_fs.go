package domain

import (
	"os"
	"path/filepath"

	"covsight.dev/pkg/covsight/internal/adapter"
	m "covsight.dev/pkg/covsight/internal/model"
)

// rootedSourceFS resolves relative source paths against root before reading.
// Absolute paths are left as they are.
type rootedSourceFS struct {
	adapter.SourceFSAdapter
	root m.Path
}

func withSourceRoot(fs adapter.SourceFSAdapter, root m.Path) adapter.SourceFSAdapter {
	if root == "" {
		return fs
	}

	return &rootedSourceFS{SourceFSAdapter: fs, root: root}
}

func (r *rootedSourceFS) resolve(path m.Path) m.Path {
	if filepath.IsAbs(string(path)) {
		return path
	}

	return r.JoinPath(string(r.root), string(path))
}

func (r *rootedSourceFS) ReadFile(path m.Path) ([]byte, error) {
	return r.SourceFSAdapter.ReadFile(r.resolve(path))
}

func (r *rootedSourceFS) ReadText(path m.Path) (string, error) {
	return r.SourceFSAdapter.ReadText(r.resolve(path))
}

func (r *rootedSourceFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return r.SourceFSAdapter.FileInfo(r.resolve(path))
}
