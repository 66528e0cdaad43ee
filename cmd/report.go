package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covsight.dev/pkg/covsight/internal/domain"
	m "covsight.dev/pkg/covsight/internal/model"
)

var reportFormatFlag string
var reportRootFlag string
var reportCiServerFlag string
var reportSummaryFlag bool
var reportStripPrefixFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [trace-files...]",
		Short: "Export a coverage report",
		Long:  reportLongDescription,
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindStripPrefixFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := m.ParseOutputType(viper.GetString(reportFormatKey))
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", formatFlagName, err)
			}

			return workflow.Export(cmd.Context(), domain.ExportArgs{
				SummaryArgs: domain.SummaryArgs{
					Traces:      parsePaths(args),
					StripPrefix: viper.GetString(reportStripPrefixKey),
				},
				Format:      format,
				Output:      m.ParseOutputFile(viper.GetString(outputFlagName)),
				DefaultName: m.Path(viper.GetString(reportDefaultNameKey)),
				Root:        m.Path(viper.GetString(reportRootKey)),
				Ci:          m.ParseCi(viper.GetString(reportCiServerKey)),
				ShowSummary: viper.GetBool(reportSummaryKey),
			})
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&reportFormatFlag, formatFlagName, "f", defaultFormat, "output format: html, json, toml, xml or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), reportFormatKey)

	cmd.Flags().StringVar(&reportRootFlag, rootFlagName, "", "directory relative source paths are read from")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), reportRootKey)

	cmd.Flags().StringVar(&reportCiServerFlag, ciServerFlagName, "", "CI service the traces were collected on (e.g. travis-ci, circle-ci)")
	bindFlagToConfig(cmd.Flags().Lookup(ciServerFlagName), reportCiServerKey)

	cmd.Flags().BoolVar(&reportSummaryFlag, summaryFlagName, defaultShowSummary, "print the per-file summary after exporting")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFlagName), reportSummaryKey)

	addStripPrefixFlag(cmd)
}

func addStripPrefixFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&reportStripPrefixFlag, stripPrefixFlagName, "", "prefix removed from every traced path (e.g. a Go module path)")
}

// bindStripPrefixFlag binds the flag of the running command only, since
// report and summary share the config key.
func bindStripPrefixFlag(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(stripPrefixFlagName), reportStripPrefixKey)
}
