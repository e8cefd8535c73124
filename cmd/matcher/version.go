package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at release time; falls back to build info.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the matcher version",
	Run: func(_ *cobra.Command, _ []string) {
		v := version
		if v == "" {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				v = info.Main.Version
			} else {
				v = "(devel)"
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "matcher %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
