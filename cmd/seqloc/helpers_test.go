package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sampleFeatures = `features:
  - id: gene1
    type: gene
    seq_id: chr1
    start: 10
    end: 200
    strand: "+"
  - id: site2
    type: misc_feature
    seq_id: chr1
    location: "complement(5..10)"
  - id: flipped
    type: CDS
    seq_id: chr2
    start: 300
    end: 250
`

// writeFeatures writes a feature file into a temp dir and returns its path.
func writeFeatures(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs cmd with args, returning stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// setQuiet toggles --quiet for the duration of a test.
func setQuiet(t *testing.T, v bool) {
	t.Helper()
	old := quiet
	quiet = v
	t.Cleanup(func() { quiet = old })
}
