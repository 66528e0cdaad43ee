package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	m "covsight.dev/pkg/covsight/internal/model"
)

// ErrUnsupportedTraceFormat is returned for trace files with an unknown extension.
var ErrUnsupportedTraceFormat = errors.New("unsupported trace file format")

// defaultLoadParallelism bounds how many trace files are decoded at once.
const defaultLoadParallelism = 4

// TraceLoader reads Trace Stores persisted by an instrumentation engine.
type TraceLoader interface {
	// Load reads a single trace file.
	Load(ctx context.Context, path m.Path) (*m.TraceStore, error)

	// LoadAll reads every trace file and merges them into one store.
	LoadAll(ctx context.Context, paths []m.Path) (*m.TraceStore, error)
}

// LocalTraceLoader decodes trace files from disk. The format is chosen from
// the file extension.
type LocalTraceLoader struct {
	// StripPrefix is removed from the front of every loaded source path, e.g.
	// a module import path in Go coverage profiles.
	StripPrefix string
	// Parallelism bounds concurrent decoding in LoadAll. Zero uses a default.
	Parallelism int
}

// NewLocalTraceLoader constructs a LocalTraceLoader with default settings.
func NewLocalTraceLoader() *LocalTraceLoader {
	return &LocalTraceLoader{}
}

type traceFormat int

const (
	formatUnknown traceFormat = iota
	formatJSON
	formatYAML
	formatTOML
	formatProfile
	formatSQLite
)

func detectTraceFormat(path m.Path) traceFormat {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	case ".out", ".cov", ".coverprofile":
		return formatProfile
	case ".db", ".sqlite", ".sqlite3":
		return formatSQLite
	default:
		return formatUnknown
	}
}

// Load reads a single trace file.
func (l *LocalTraceLoader) Load(ctx context.Context, path m.Path) (*m.TraceStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		store *m.TraceStore
		err   error
	)

	switch detectTraceFormat(path) {
	case formatJSON, formatYAML, formatTOML:
		store, err = loadTraceFile(path, detectTraceFormat(path))
	case formatProfile:
		store, err = loadCoverProfile(path)
	case formatSQLite:
		store, err = loadSQLiteTraces(ctx, path)
	case formatUnknown:
		err = fmt.Errorf("%s: %w", path, ErrUnsupportedTraceFormat)
	}

	if err != nil {
		slog.Error("failed to load traces", "path", path, "error", err)
		return nil, err
	}

	if l.StripPrefix != "" {
		store = StripPathPrefix(store, l.StripPrefix)
	}

	slog.Debug("loaded traces", "path", path, "files", store.Len(), "coverable", store.TotalCoverable())

	return store, nil
}

// LoadAll decodes paths concurrently and merges the results. Merging is
// order-independent, so the resulting store does not depend on scheduling.
func (l *LocalTraceLoader) LoadAll(ctx context.Context, paths []m.Path) (*m.TraceStore, error) {
	stores := make([]*m.TraceStore, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)

	limit := l.Parallelism
	if limit <= 0 {
		limit = defaultLoadParallelism
	}

	group.SetLimit(limit)

	for i, path := range paths {
		group.Go(func() error {
			store, err := l.Load(groupCtx, path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			stores[i] = store

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	merged := m.NewTraceStore()
	for _, store := range stores {
		merged.Merge(store)
	}

	return merged, nil
}

// StripPathPrefix returns a copy of store with prefix removed from every path
// below it. The prefix only matches whole path segments; paths equal to the
// prefix or outside it are kept unchanged.
func StripPathPrefix(store *m.TraceStore, prefix string) *m.TraceStore {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return store
	}

	out := m.NewTraceStore()

	_ = store.Range(func(path m.Path, traces []m.Trace) error {
		out.InsertAll(stripSegmentPrefix(path, prefix), traces)
		return nil
	})

	return out
}

func stripSegmentPrefix(path m.Path, prefix string) m.Path {
	rest, ok := strings.CutPrefix(string(path), prefix+"/")
	if !ok || rest == "" {
		return path
	}

	return m.Path(rest)
}
