package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X covsight.dev/pkg/covsight/cmd.version=v1.2.3".
var version = ""

// buildInfo describes the running covsight binary.
type buildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Time      string
	Modified  bool
}

func readBuildInfo() buildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildInfo{Version: version}
	}

	return newBuildInfo(version, info)
}

func newBuildInfo(linked string, info *debug.BuildInfo) buildInfo {
	bi := buildInfo{Version: linked, GoVersion: info.GoVersion}
	if bi.Version == "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.Revision = s.Value
		case "vcs.time":
			bi.Time = s.Value
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}

	return bi
}

func (bi buildInfo) write(w io.Writer) {
	v := bi.Version
	if v == "" {
		v = "unknown"
	}

	fmt.Fprintf(w, "covsight %s\n", v)

	if bi.GoVersion != "" {
		fmt.Fprintf(w, "go:       %s\n", bi.GoVersion)
	}

	if bi.Revision != "" {
		rev := bi.Revision
		if bi.Modified {
			rev += " (modified)"
		}

		fmt.Fprintf(w, "commit:   %s\n", rev)
	}

	if bi.Time != "" {
		fmt.Fprintf(w, "built:    %s\n", bi.Time)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print covsight build information",
		Long:  "Prints the covsight release, the Go toolchain and the commit the binary was built from.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			readBuildInfo().write(cmd.OutOrStdout())
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
