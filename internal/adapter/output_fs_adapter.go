package adapter

import (
	"io"
	"os"

	m "covsight.dev/pkg/covsight/internal/model"
)

// OutputFSAdapter opens report destinations.
type OutputFSAdapter interface {
	// Create creates or truncates the file at path for writing.
	Create(path m.Path) (io.WriteCloser, error)

	// Stdout returns the process standard output. Closing it is a no-op.
	Stdout() io.WriteCloser
}

// LocalOutputFSAdapter writes to the local filesystem and the process stdout.
type LocalOutputFSAdapter struct {
	stdout io.Writer
}

// NewLocalOutputFSAdapter constructs a LocalOutputFSAdapter bound to os.Stdout.
func NewLocalOutputFSAdapter() *LocalOutputFSAdapter {
	return &LocalOutputFSAdapter{stdout: os.Stdout}
}

// NewLocalOutputFSAdapterWithStdout binds the stream destination to w.
func NewLocalOutputFSAdapterWithStdout(w io.Writer) *LocalOutputFSAdapter {
	return &LocalOutputFSAdapter{stdout: w}
}

// Create creates or truncates the file at path.
func (a *LocalOutputFSAdapter) Create(path m.Path) (io.WriteCloser, error) {
	// #nosec G304 - destination is chosen by the user
	return os.Create(string(path))
}

// Stdout returns a handle to the stream destination that never closes it.
func (a *LocalOutputFSAdapter) Stdout() io.WriteCloser {
	return nopWriteCloser{a.stdout}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
