package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "covsight.dev/pkg/covsight/internal/model"
)

// SimpleUI implements UI using the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints the per-file coverage table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.CoverageReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(report.Files) == 0 {
		s.printf("No coverage data\n")
		return nil
	}

	s.printf("\n%s", renderSummaryTable(report))

	return nil
}

// DisplayExported prints the destination of a finished export.
func (s *SimpleUI) DisplayExported(ctx context.Context, dest m.Path, format m.OutputType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Status goes to stderr so that streamed exports stay clean.
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "Wrote %s report to %s\n", format, dest)

	return nil
}

func renderSummaryTable(report m.CoverageReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Covered", "Coverable", "%"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	rows := buildFileRows(report)
	for _, row := range rows {
		table.Append([]string{
			row.path,
			fmt.Sprintf("%d", row.covered),
			fmt.Sprintf("%d", row.coverable),
			formatPercent(row.percent),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(rows)),
		fmt.Sprintf("%d", report.Covered()),
		fmt.Sprintf("%d", report.Coverable()),
		formatPercent(report.Percent()),
	})

	table.Render()

	return tableBuffer.String()
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
