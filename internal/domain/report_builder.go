package domain

import (
	m "covsight.dev/pkg/covsight/internal/model"
)

// BuildReport wraps the aggregated records into the serializable report root.
func BuildReport(records []m.SourceFile) m.CoverageReport {
	files := make([]m.SourceFile, len(records))
	copy(files, records)

	return m.CoverageReport{Files: files}
}

// SummarizeStore builds a report without source text, for the summary table.
func SummarizeStore(store *m.TraceStore) m.CoverageReport {
	snapshot := store.Snapshot()
	files := make([]m.SourceFile, 0, snapshot.Len())

	_ = snapshot.Range(func(path m.Path, traces []m.Trace) error {
		files = append(files, m.SourceFile{
			Path:      m.PathComponents(path),
			Traces:    m.CloneTraces(traces),
			Covered:   snapshot.CoveredInPath(path),
			Coverable: snapshot.CoverableInPath(path),
		})

		return nil
	})

	return m.CoverageReport{Files: files}
}
