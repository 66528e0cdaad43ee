package domain

import (
	"errors"
	"fmt"

	m "covsight.dev/pkg/covsight/internal/model"
)

// ErrorKind classifies an export failure.
type ErrorKind int

// Export failure kinds.
const (
	SourceReadError ErrorKind = iota + 1
	EncodingError
	DestinationError
)

// Sentinels matched by errors.Is against an *ExportError of the same kind.
var (
	ErrSourceRead  = errors.New("source read failed")
	ErrEncoding    = errors.New("report encoding failed")
	ErrDestination = errors.New("destination write failed")
)

var (
	// ErrNoTraceFiles is returned when a command is given no trace files.
	ErrNoTraceFiles = errors.New("no trace files given")
	// ErrRootNotDirectory is returned when the source root is not a directory.
	ErrRootNotDirectory = errors.New("not a directory")
)

func (k ErrorKind) String() string {
	switch k {
	case SourceReadError:
		return "source read"
	case EncodingError:
		return "encoding"
	case DestinationError:
		return "destination"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case SourceReadError:
		return ErrSourceRead
	case EncodingError:
		return ErrEncoding
	case DestinationError:
		return ErrDestination
	default:
		return nil
	}
}

// ExportError is returned by every failing export. Path names the offending
// source file or destination and is empty for encoding failures.
type ExportError struct {
	Kind ErrorKind
	Path m.Path
	Err  error
}

func (e *ExportError) Error() string {
	switch e.Kind {
	case SourceReadError:
		return fmt.Sprintf("unable to read source file %s: %v", e.Path, e.Err)
	case EncodingError:
		return fmt.Sprintf("report isn't serializable: %v", e.Err)
	case DestinationError:
		return fmt.Sprintf("file %s is not writeable: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("export failed: %v", e.Err)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ExportError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

func sourceReadError(path m.Path, err error) error {
	return &ExportError{Kind: SourceReadError, Path: path, Err: err}
}

func encodingError(err error) error {
	return &ExportError{Kind: EncodingError, Err: err}
}

func destinationError(path m.Path, err error) error {
	return &ExportError{Kind: DestinationError, Path: path, Err: err}
}
