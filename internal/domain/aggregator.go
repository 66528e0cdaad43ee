package domain

import (
	"context"
	"log/slog"

	"covsight.dev/pkg/covsight/internal/adapter"
	m "covsight.dev/pkg/covsight/internal/model"
)

// Aggregate joins every path in store with its source text and coverage
// counts. Records follow the store's path order. Any unreadable file fails the
// whole aggregation; there is no partial result.
func Aggregate(ctx context.Context, store *m.TraceStore, fs adapter.SourceFSAdapter) ([]m.SourceFile, error) {
	snapshot := store.Snapshot()
	records := make([]m.SourceFile, 0, snapshot.Len())

	err := snapshot.Range(func(path m.Path, traces []m.Trace) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := fs.ReadText(path)
		if err != nil {
			slog.Error("failed to read source file", "path", path, "error", err)
			return sourceReadError(path, err)
		}

		records = append(records, m.SourceFile{
			Path:      m.PathComponents(path),
			Content:   content,
			Traces:    m.CloneTraces(traces),
			Covered:   snapshot.CoveredInPath(path),
			Coverable: snapshot.CoverableInPath(path),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
