package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/praetorian-inc/seqloc/pkg/datastore"
	"github.com/praetorian-inc/seqloc/pkg/store"
	"github.com/praetorian-inc/seqloc/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newImportCmd creates a fresh import command for testing
func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "import <path> [path...]",
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
	cmd.Flags().StringVar(&importDatastore, "datastore", "seqloc.ds", "Path to datastore directory")
	cmd.Flags().BoolVar(&importKeepSources, "keep-sources", false, "Archive imported feature files in the datastore")
	cmd.Flags().StringVar(&importGitRef, "git-ref", "", "Read feature files from this ref of each git repository")
	return cmd
}

func TestImportCmd_StoresFeatures(t *testing.T) {
	setQuiet(t, false)
	path := writeFeatures(t, sampleFeatures)
	dsPath := filepath.Join(t.TempDir(), "seqloc.ds")

	stdout, _, err := execute(t, newImportCmd(), path, "--datastore", dsPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 3 features (0 already present)")
	assert.NoDirExists(t, filepath.Join(dsPath, "sources"))

	s, err := store.NewSQLite(filepath.Join(dsPath, datastore.DBName))
	require.NoError(t, err)
	defer s.Close()

	features, err := s.GetFeatures("chr2")
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "flipped", features[0].ID)
	assert.Equal(t, types.StrandReverse, features[0].Location.Strand())
	assert.Equal(t, "complement(250..300)", features[0].Location.ToFeatureTableString())
}

func TestImportCmd_SkipsExisting(t *testing.T) {
	setQuiet(t, false)
	path := writeFeatures(t, sampleFeatures)
	dsPath := filepath.Join(t.TempDir(), "seqloc.ds")

	_, _, err := execute(t, newImportCmd(), path, "--datastore", dsPath)
	require.NoError(t, err)

	stdout, _, err := execute(t, newImportCmd(), path, "--datastore", dsPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 0 features (3 already present)")
}

func TestImportCmd_KeepSources(t *testing.T) {
	setQuiet(t, true)
	path := writeFeatures(t, sampleFeatures)
	dsPath := filepath.Join(t.TempDir(), "seqloc.ds")

	_, _, err := execute(t, newImportCmd(), path, "--datastore", dsPath, "--keep-sources")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	sources := &datastore.SourceStore{Root: filepath.Join(dsPath, "sources")}
	assert.True(t, sources.Exists(datastore.ComputeSourceID(content)))
}

func TestImportCmd_MissingPath(t *testing.T) {
	_, _, err := execute(t, newImportCmd(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestImportThenReport(t *testing.T) {
	setQuiet(t, true)
	path := writeFeatures(t, sampleFeatures)
	dsPath := filepath.Join(t.TempDir(), "seqloc.ds")

	_, _, err := execute(t, newImportCmd(), path, "--datastore", dsPath)
	require.NoError(t, err)

	stdout, _, err := execute(t, newReportCmd(), "--datastore", dsPath, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sequence chr1 (2 features)")
	assert.Contains(t, stdout, "flipped CDS complement(250..300) 51 bp")
	assert.Contains(t, stdout, "3 features on 2 sequences")
}

// initFeatureRepo commits sampleFeatures into a fresh git repository.
func initFeatureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "features.yaml"), []byte(sampleFeatures), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("features.yaml")
	require.NoError(t, err)
	_, err = wt.Commit("add features", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// Uncommitted edits are not imported
	require.NoError(t, os.WriteFile(filepath.Join(dir, "features.yaml"), []byte("features: []\n"), 0o644))
	return dir
}

func TestImportCmd_GitRef(t *testing.T) {
	setQuiet(t, false)
	repo := initFeatureRepo(t)
	dsPath := filepath.Join(t.TempDir(), "seqloc.ds")

	stdout, stderr, err := execute(t, newImportCmd(), repo, "--datastore", dsPath, "--git-ref", "HEAD")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 3 features (0 already present)")
	assert.Contains(t, stderr, "features.yaml: feature flipped")
}

func TestImportCmd_GitRefRejectsKeepSources(t *testing.T) {
	repo := initFeatureRepo(t)

	_, _, err := execute(t, newImportCmd(), repo, "--git-ref", "HEAD", "--keep-sources",
		"--datastore", filepath.Join(t.TempDir(), "seqloc.ds"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--keep-sources cannot be combined with --git-ref")
}
