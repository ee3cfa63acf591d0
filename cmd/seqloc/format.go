package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/praetorian-inc/seqloc/pkg/loader"
	"github.com/praetorian-inc/seqloc/pkg/types"
	"github.com/spf13/cobra"
)

var (
	formatOutput string
	formatColor  string
)

var formatCmd = &cobra.Command{
	Use:   "format <path> [path...]",
	Short: "Render feature locations",
	Long: `Load features from YAML files or directories and print each location in
feature-table notation. Reversed coordinates are normalized onto the reverse
strand with a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVar(&formatOutput, "format", "human", "Output format: human, json, tsv")
	formatCmd.Flags().StringVar(&formatColor, "color", "auto", "Color output: auto, always, never")
}

func runFormat(cmd *cobra.Command, args []string) error {
	l := loader.NewLoader(loader.WithWarningHandler(warningHandler(cmd.ErrOrStderr())))
	features, err := l.LoadPaths(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("loading features: %w", err)
	}

	out := cmd.OutOrStdout()
	switch formatOutput {
	case "json":
		return outputFeaturesJSON(out, features)
	case "tsv":
		return outputFeaturesTSV(out, features)
	case "human":
		s, err := resolveStyles(formatColor)
		if err != nil {
			return err
		}
		return outputFeaturesHuman(out, features, s)
	default:
		return fmt.Errorf("unknown output format: %s", formatOutput)
	}
}

func outputFeaturesJSON(out io.Writer, features []*types.Feature) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(features)
}

func outputFeaturesTSV(out io.Writer, features []*types.Feature) error {
	fmt.Fprintln(out, "id\ttype\tseq_id\tstart\tend\tstrand\tlocation")
	for _, f := range features {
		loc := f.Location
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.Type, loc.SeqID(),
			coordinate(loc.HasStart(), loc.Start()),
			coordinate(loc.HasEnd(), loc.End()),
			loc.Strand().Symbol(),
			loc.ToFeatureTableString())
	}
	return nil
}

func outputFeaturesHuman(out io.Writer, features []*types.Feature, s *styles) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, f := range features {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.id.Sprint(f.ID),
			s.kind.Sprint(f.Type),
			locationStyle(s, f.Location).Sprint(f.Location.ToFeatureTableString()),
			s.metadata.Sprint(f.SeqID()))
	}
	return tw.Flush()
}

func locationStyle(s *styles, loc *types.AtomicLocation) *color.Color {
	switch {
	case loc.IsRemote():
		return s.remote
	case loc.Strand() == types.StrandReverse:
		return s.reverse
	default:
		return s.location
	}
}

func coordinate(ok bool, v int64) string {
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
