package main

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/seqloc/pkg/remap"
	"github.com/praetorian-inc/seqloc/pkg/types"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "seqloc",
	Short: "seqloc - sequence feature locations",
	Long: `seqloc reads, normalizes and remaps biological sequence feature locations.

Features are described in YAML files as 1-based inclusive intervals with a
strand. seqloc renders them in feature-table notation, remaps them into
sub-sequence windows, and keeps them in SQLite datastores.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(truncateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(exploreCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// warningHandler prints location warnings to w unless --quiet is set.
func warningHandler(w io.Writer) types.WarningHandler {
	if quiet {
		return types.DiscardWarnings
	}
	return func(warn types.Warning) {
		fmt.Fprintf(w, "warning: %s\n", warn.Warning())
	}
}

// writerLogger is a remap.DebugLogger printing to a writer.
type writerLogger struct {
	w io.Writer
}

func (l writerLogger) Log(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "debug: "+format+"\n", args...)
}

// debugLogger returns a logger for --verbose runs.
func debugLogger(w io.Writer) remap.DebugLogger {
	if verbose && !quiet {
		return writerLogger{w: w}
	}
	return remap.NoopLogger{}
}
