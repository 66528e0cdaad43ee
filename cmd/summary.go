package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covsight.dev/pkg/covsight/internal/domain"
)

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [trace-files...]",
		Short: "Print per-file coverage",
		Long:  summaryLongDescription,
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindStripPrefixFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Summary(cmd.Context(), domain.SummaryArgs{
				Traces:      parsePaths(args),
				StripPrefix: viper.GetString(reportStripPrefixKey),
			})
		},
	}

	addStripPrefixFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
