// Package cmd provides the root command and CLI setup for covsight.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covsight.dev/pkg/covsight/internal/adapter"
	"covsight.dev/pkg/covsight/internal/controller"
	"covsight.dev/pkg/covsight/internal/domain"
	m "covsight.dev/pkg/covsight/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var outputFSAdapter adapter.OutputFSAdapter
var traceLoader adapter.TraceLoader
var workflow domain.Workflow
var ui controller.UI

// outputFlag is a root-level flag naming an explicit output file.
var outputFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	outputFSAdapter = adapter.NewLocalOutputFSAdapter()
	traceLoader = adapter.NewLocalTraceLoader()
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		outputFSAdapter,
		traceLoader,
		ui,
	)
}

const traceFormatsHelp = `Trace files are read by extension:
  - .json .yaml .yml .toml       covsight trace files
  - .out .cov .coverprofile      Go coverage profiles
  - .db .sqlite .sqlite3         SQLite databases with a traces table`

const rootLongDescription = `covsight turns line coverage traces collected by an instrumentation
engine into a single self-contained, interactive HTML report.

` + traceFormatsHelp

const reportLongDescription = `Merge the given trace files and export them.

The default html format joins every traced file with its source and writes
a self-contained report (covsight-report.html unless configured). The json,
toml, xml and yaml formats re-emit the merged traces and stream to standard
output when no --output is given.

` + traceFormatsHelp

const summaryLongDescription = `Merge the given trace files and print covered and coverable lines per file.

` + traceFormatsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "covsight",
		Short:        "Coverage report exporter",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&outputFlag, outputFlagName, "o", defaultOutput, "explicit output file (\"-\" for standard output)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
