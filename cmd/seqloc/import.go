package main

import (
	"fmt"

	"github.com/praetorian-inc/seqloc/pkg/datastore"
	"github.com/praetorian-inc/seqloc/pkg/loader"
	"github.com/praetorian-inc/seqloc/pkg/types"
	"github.com/spf13/cobra"
)

var (
	importDatastore   string
	importKeepSources bool
	importGitRef      string
)

var importCmd = &cobra.Command{
	Use:   "import <path> [path...]",
	Short: "Import features into a datastore",
	Long: `Load features from YAML files or directories into a datastore directory.
Features whose ID is already present are left untouched. With --keep-sources
the feature files themselves are archived in the datastore.

With --git-ref each path is a git repository, and the feature files are read
from the tree of the given branch, tag or commit instead of the working copy.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDatastore, "datastore", "seqloc.ds", "Path to datastore directory")
	importCmd.Flags().BoolVar(&importKeepSources, "keep-sources", false, "Archive imported feature files in the datastore")
	importCmd.Flags().StringVar(&importGitRef, "git-ref", "", "Read feature files from this ref of each git repository")
}

func runImport(cmd *cobra.Command, args []string) error {
	l := loader.NewLoader(loader.WithWarningHandler(warningHandler(cmd.ErrOrStderr())))

	var (
		files    []string
		features []*types.Feature
		err      error
	)
	if importGitRef != "" {
		if importKeepSources {
			return fmt.Errorf("--keep-sources cannot be combined with --git-ref")
		}
		for _, repo := range args {
			loaded, err := l.LoadGitRef(cmd.Context(), repo, importGitRef)
			if err != nil {
				return fmt.Errorf("loading features from %s: %w", repo, err)
			}
			features = append(features, loaded...)
		}
	} else {
		files, err = loader.ListFiles(cmd.Context(), args)
		if err != nil {
			return err
		}
		features, err = l.LoadFiles(cmd.Context(), files)
		if err != nil {
			return fmt.Errorf("loading features: %w", err)
		}
	}

	ds, err := datastore.Open(importDatastore, datastore.Options{KeepSources: importKeepSources})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer ds.Close()

	var imported, skipped int
	for _, f := range features {
		exists, err := ds.Store.FeatureExists(f.ID)
		if err != nil {
			return fmt.Errorf("checking feature %s: %w", f.ID, err)
		}
		if exists {
			skipped++
			continue
		}
		if err := ds.Store.AddFeature(f); err != nil {
			return fmt.Errorf("storing feature %s: %w", f.ID, err)
		}
		imported++
	}

	if ds.Sources != nil {
		for _, path := range files {
			id, err := ds.Sources.StoreFile(path)
			if err != nil {
				return fmt.Errorf("archiving %s: %w", path, err)
			}
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "archived %s as %s\n", path, id)
			}
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d features (%d already present) into %s\n",
			imported, skipped, importDatastore)
	}
	return nil
}
