// Package domain implements the coverage export pipeline: aggregation of
// trace facts with their sources, safe serialization and destination handling.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"covsight.dev/pkg/covsight/internal/adapter"
	"covsight.dev/pkg/covsight/internal/controller"
	m "covsight.dev/pkg/covsight/internal/model"
)

// SummaryArgs contains the arguments for summarizing trace files.
type SummaryArgs struct {
	Traces      []m.Path
	StripPrefix string
}

// ExportArgs contains the arguments for exporting a report.
type ExportArgs struct {
	SummaryArgs
	Format      m.OutputType
	Output      m.OutputFile
	DefaultName m.Path
	Root        m.Path
	Ci          m.CiService
	ShowSummary bool
}

// Workflow defines the reporting operations exposed to the CLI.
type Workflow interface {
	Export(ctx context.Context, args ExportArgs) error
	Summary(ctx context.Context, args SummaryArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.OutputFSAdapter
	adapter.TraceLoader
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	sourceFS adapter.SourceFSAdapter,
	outputFS adapter.OutputFSAdapter,
	loader adapter.TraceLoader,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: sourceFS,
		OutputFSAdapter: outputFS,
		TraceLoader:     loader,
		UI:              ui,
	}
}

// Export loads the trace files and writes the report in the requested format.
func (w *workflow) Export(ctx context.Context, args ExportArgs) error {
	logger := slog.With("export_id", uuid.NewString(), "format", args.Format.String())
	logger.Info("starting export", "traces", len(args.Traces), "ci", args.Ci.String())

	store, err := w.loadStore(ctx, args.SummaryArgs)
	if err != nil {
		logger.Error("failed to load traces", "error", err)
		return err
	}

	var (
		dest   m.Path
		report m.CoverageReport
	)

	if args.Format == m.OutputHTML {
		report, dest, err = w.exportHTML(ctx, store, args)
	} else {
		dest, err = w.exportTraceFile(store, args)
	}

	if err != nil {
		logger.Error("export failed", "error", err)
		return err
	}

	logger.Info("export finished", "destination", dest, "files", store.Len(),
		"covered", store.TotalCovered(), "coverable", store.TotalCoverable())

	if err := w.DisplayExported(ctx, dest, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if !args.ShowSummary {
		return nil
	}

	if dest == StdoutPath {
		logger.Warn("summary skipped, report was streamed to standard output")
		return nil
	}

	if args.Format != m.OutputHTML {
		report = SummarizeStore(store)
	}

	if err := w.DisplaySummary(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// ExportHTML runs the core export: aggregation, report building, safe
// serialization and a single write to the resolved destination. Nothing is
// opened or truncated unless every earlier stage succeeded.
func ExportHTML(
	ctx context.Context,
	store *m.TraceStore,
	sourceFS adapter.SourceFSAdapter,
	outputFS adapter.OutputFSAdapter,
	file m.OutputFile,
	policy OutputPolicy,
) (m.CoverageReport, m.Path, error) {
	records, err := Aggregate(ctx, store, sourceFS)
	if err != nil {
		return m.CoverageReport{}, "", err
	}

	report := BuildReport(records)

	doc, err := RenderHTML(report)
	if err != nil {
		return m.CoverageReport{}, "", err
	}

	dest, err := writeDocument(outputFS, file, policy, doc)
	if err != nil {
		return m.CoverageReport{}, dest, err
	}

	return report, dest, nil
}

func (w *workflow) exportHTML(ctx context.Context, store *m.TraceStore, args ExportArgs) (m.CoverageReport, m.Path, error) {
	if err := w.checkSourceRoot(args.Root); err != nil {
		return m.CoverageReport{}, "", err
	}

	return ExportHTML(ctx, store,
		withSourceRoot(w.SourceFSAdapter, args.Root),
		w.OutputFSAdapter,
		args.Output,
		DefaultPolicy(args.DefaultName),
	)
}

func (w *workflow) checkSourceRoot(root m.Path) error {
	if root == "" {
		return nil
	}

	info, err := w.FileInfo(root)
	if err != nil {
		return fmt.Errorf("source root: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("source root %s: %w", root, ErrRootNotDirectory)
	}

	return nil
}

func (w *workflow) exportTraceFile(store *m.TraceStore, args ExportArgs) (m.Path, error) {
	doc, err := EncodeTraceFile(m.NewTraceFile(store, args.Ci), args.Format)
	if err != nil {
		return "", err
	}

	return writeDocument(w.OutputFSAdapter, args.Output, StreamPolicy(), doc)
}

// Summary loads the trace files and displays per-file coverage without
// reading any source or writing any file.
func (w *workflow) Summary(ctx context.Context, args SummaryArgs) error {
	store, err := w.loadStore(ctx, args)
	if err != nil {
		slog.Error("failed to load traces", "error", err)
		return err
	}

	if err := w.DisplaySummary(ctx, SummarizeStore(store)); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) loadStore(ctx context.Context, args SummaryArgs) (*m.TraceStore, error) {
	if len(args.Traces) == 0 {
		return nil, ErrNoTraceFiles
	}

	store, err := w.LoadAll(ctx, args.Traces)
	if err != nil {
		return nil, fmt.Errorf("load traces: %w", err)
	}

	return adapter.StripPathPrefix(store, args.StripPrefix), nil
}
