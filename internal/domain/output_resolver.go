package domain

import (
	"bufio"
	"errors"
	"io"

	"covsight.dev/pkg/covsight/internal/adapter"
	m "covsight.dev/pkg/covsight/internal/model"
)

// StdoutPath is the destination name reported when output goes to standard output.
const StdoutPath m.Path = "-"

// errNoDestination is returned when neither an explicit path, a default name
// nor the stream fallback is available.
var errNoDestination = errors.New("no output destination configured")

type policyKind int

const (
	policyNone policyKind = iota
	policyDefault
	policyStream
)

// OutputPolicy decides where output goes when no explicit file was requested:
// either a default file or standard output, never both. The zero value has no
// fallback.
type OutputPolicy struct {
	kind        policyKind
	defaultPath m.Path
}

// DefaultPolicy returns a policy that falls back to the named file.
func DefaultPolicy[P m.PathLike](name P) OutputPolicy {
	return OutputPolicy{kind: policyDefault, defaultPath: m.AsPath(name)}
}

// StreamPolicy returns a policy that falls back to standard output.
func StreamPolicy() OutputPolicy {
	return OutputPolicy{kind: policyStream}
}

// ResolveOutput opens the destination selected by file and policy. An explicit
// file always wins; an explicit "-" selects standard output. Failing to open
// the destination is a DestinationError.
func ResolveOutput(fs adapter.OutputFSAdapter, file m.OutputFile, policy OutputPolicy) (io.WriteCloser, m.Path, error) {
	path, ok := file.Path()
	if ok && path == StdoutPath {
		return fs.Stdout(), StdoutPath, nil
	}

	if !ok {
		switch {
		case policy.kind == policyStream:
			return fs.Stdout(), StdoutPath, nil
		case policy.kind == policyDefault && policy.defaultPath != "":
			path = policy.defaultPath
		default:
			return nil, "", destinationError("", errNoDestination)
		}
	}

	w, err := fs.Create(path)
	if err != nil {
		return nil, path, destinationError(path, err)
	}

	return w, path, nil
}

// writeDocument writes doc to the resolved destination in one buffered pass
// and closes it.
func writeDocument(fs adapter.OutputFSAdapter, file m.OutputFile, policy OutputPolicy, doc []byte) (dest m.Path, err error) {
	w, dest, err := ResolveOutput(fs, file, policy)
	if err != nil {
		return dest, err
	}

	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = destinationError(dest, closeErr)
		}
	}()

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(doc); err != nil {
		return dest, destinationError(dest, err)
	}

	if err := bw.Flush(); err != nil {
		return dest, destinationError(dest, err)
	}

	return dest, nil
}
