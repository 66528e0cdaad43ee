// Package controller provides the user-facing renderers for coverage summaries.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "covsight.dev/pkg/covsight/internal/model"
)

// UI defines how the workflow reports results to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplaySummary shows per-file and project coverage for report.
	DisplaySummary(ctx context.Context, report m.CoverageReport) error
	// DisplayExported tells the user where an export was written.
	DisplayExported(ctx context.Context, dest m.Path, format m.OutputType) error
}

// NewUI picks the interactive TUI when attached to a terminal and the plain
// table renderer otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

type fileRow struct {
	path      string
	covered   int
	coverable int
	percent   float64
}

func buildFileRows(report m.CoverageReport) []fileRow {
	rows := make([]fileRow, 0, len(report.Files))
	for _, file := range report.Files {
		rows = append(rows, fileRow{
			path:      m.JoinComponents(file.Path),
			covered:   file.Covered,
			coverable: file.Coverable,
			percent:   file.Percent(),
		})
	}

	return rows
}
