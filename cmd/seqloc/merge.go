package main

import (
	"fmt"

	"github.com/praetorian-inc/seqloc/pkg/datastore"
	"github.com/praetorian-inc/seqloc/pkg/store"
	"github.com/spf13/cobra"
)

var (
	mergeOutput string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <source1> <source2> [source3...]",
	Short: "Merge multiple feature datastores",
	Long: `Merge multiple feature datastores into a single output database. Sources may
be database files or datastore directories.

Deduplication is automatic: a feature ID present in several sources is
stored once, taken from the first source that defines it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "merged.db", "Output database path")
}

func runMerge(cmd *cobra.Command, args []string) error {
	sources := make([]string, len(args))
	for i, arg := range args {
		sources[i] = datastore.ResolveDB(arg)
	}

	stats, err := store.Merge(store.MergeConfig{
		SourcePaths: sources,
		DestPath:    mergeOutput,
	})
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merge complete:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Sources processed: %d\n", stats.SourcesProcessed)
	fmt.Fprintf(cmd.OutOrStdout(), "  Features merged: %d\n", stats.FeaturesMerged)
	fmt.Fprintf(cmd.OutOrStdout(), "  Features skipped: %d\n", stats.FeaturesSkipped)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", mergeOutput)

	return nil
}
