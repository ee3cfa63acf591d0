package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/praetorian-inc/seqloc/pkg/loader"
	"github.com/praetorian-inc/seqloc/pkg/remap"
	"github.com/praetorian-inc/seqloc/pkg/types"
	"github.com/spf13/cobra"
)

var (
	truncateWindowStart int64
	truncateWindowEnd   int64
	truncateOrientation string
	truncateSeqID       string
	truncateOutput      string
	truncateColor       string
)

var truncateCmd = &cobra.Command{
	Use:   "truncate <path> [path...]",
	Short: "Remap features into a sequence window",
	Long: `Translate feature locations into the coordinates of a window of their
sequence. Features that do not fit entirely inside the window keep their
original coordinates and are reported as remote.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTruncate,
}

func init() {
	truncateCmd.Flags().Int64Var(&truncateWindowStart, "window-start", 1, "First base of the window (1-based)")
	truncateCmd.Flags().Int64Var(&truncateWindowEnd, "window-end", 0, "Last base of the window (inclusive)")
	truncateCmd.Flags().StringVar(&truncateOrientation, "orientation", "+", "Window orientation relative to the sequence: + or -")
	truncateCmd.Flags().StringVar(&truncateSeqID, "seq", "", "Only remap features on this sequence")
	truncateCmd.Flags().StringVar(&truncateOutput, "format", "human", "Output format: human, json")
	truncateCmd.Flags().StringVar(&truncateColor, "color", "auto", "Color output: auto, always, never")
	truncateCmd.MarkFlagRequired("window-end")
}

func runTruncate(cmd *cobra.Command, args []string) error {
	orientation, err := types.ParseStrand(truncateOrientation)
	if err != nil {
		return fmt.Errorf("parsing --orientation: %w", err)
	}
	window := remap.Window{
		Start:       truncateWindowStart,
		End:         truncateWindowEnd,
		Orientation: orientation,
	}
	if err := window.Validate(); err != nil {
		return err
	}

	l := loader.NewLoader(loader.WithWarningHandler(warningHandler(cmd.ErrOrStderr())))
	features, err := l.LoadPaths(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("loading features: %w", err)
	}

	core, err := remap.NewCore(nil, debugLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer core.Close()

	var result *remap.Result
	if truncateSeqID != "" {
		if err := core.Load(features); err != nil {
			return err
		}
		result, err = core.TruncateSeq(window, truncateSeqID)
	} else {
		result, err = core.Truncate(window, features)
	}
	if err != nil {
		return fmt.Errorf("truncating: %w", err)
	}

	out := cmd.OutOrStdout()
	switch truncateOutput {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "human":
		s, err := resolveStyles(truncateColor)
		if err != nil {
			return err
		}
		return outputTruncateHuman(out, result, s)
	default:
		return fmt.Errorf("unknown output format: %s", truncateOutput)
	}
}

func outputTruncateHuman(out io.Writer, result *remap.Result, s *styles) error {
	w := result.Window
	fmt.Fprintf(out, "%s %d..%d (%s)\n",
		s.heading.Sprint("Window:"), w.Start, w.End, w.Orientation.Symbol())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, f := range result.Features {
		status := ""
		if f.Location.IsRemote() {
			status = s.remote.Sprint("remote")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			s.id.Sprint(f.ID),
			locationStyle(s, f.Location).Sprint(f.Location.ToFeatureTableString()),
			status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d local, %d remote\n", result.Local, result.Remote)
	return nil
}
