package main

import (
	"fmt"
	"io"
	"os"

	"github.com/praetorian-inc/seqloc/pkg/datastore"
	"github.com/praetorian-inc/seqloc/pkg/store"
	"github.com/praetorian-inc/seqloc/pkg/types"
	"github.com/spf13/cobra"
)

var (
	reportDatastore string
	reportFormat    string
	reportColor     string
	reportSeqID     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report the features in a datastore",
	Long:  "Read features from a datastore and print them grouped by sequence",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDatastore, "datastore", "seqloc.ds", "Path to datastore directory or file")
	reportCmd.Flags().StringVar(&reportFormat, "format", "human", "Output format: human, json")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
	reportCmd.Flags().StringVar(&reportSeqID, "seq", "", "Only report features on this sequence")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDatastore == ":memory:" {
		return fmt.Errorf("cannot report from in-memory store")
	}
	if !store.IsPostgresDSN(reportDatastore) {
		if _, err := os.Stat(reportDatastore); err != nil {
			return fmt.Errorf("datastore not found: %s", reportDatastore)
		}
	}

	// A datastore directory holds its database inside
	s, err := store.New(store.Config{Path: datastore.ResolveDB(reportDatastore)})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer s.Close()

	var features []*types.Feature
	if reportSeqID != "" {
		features, err = s.GetFeatures(reportSeqID)
	} else {
		features, err = s.GetAllFeatures()
	}
	if err != nil {
		return fmt.Errorf("retrieving features: %w", err)
	}

	switch reportFormat {
	case "json":
		return outputFeaturesJSON(cmd.OutOrStdout(), features)
	case "human":
		st, err := resolveStyles(reportColor)
		if err != nil {
			return err
		}
		return outputReportHuman(cmd.OutOrStdout(), features, st)
	default:
		return fmt.Errorf("unknown output format: %s", reportFormat)
	}
}

func outputReportHuman(out io.Writer, features []*types.Feature, s *styles) error {
	// Group by sequence, keeping first-seen order
	var order []string
	bySeq := make(map[string][]*types.Feature)
	for _, f := range features {
		seq := f.SeqID()
		if _, ok := bySeq[seq]; !ok {
			order = append(order, seq)
		}
		bySeq[seq] = append(bySeq[seq], f)
	}

	for _, seq := range order {
		name := seq
		if name == "" {
			name = "(no sequence)"
		}
		group := bySeq[seq]
		fmt.Fprintf(out, "%s %s (%d features)\n",
			s.heading.Sprint("Sequence"), s.metadata.Sprint(name), len(group))

		for _, f := range group {
			length := "?"
			if n, err := f.Location.Length(); err == nil {
				length = fmt.Sprintf("%d bp", n)
			}
			fmt.Fprintf(out, "    %s %s %s %s\n",
				s.id.Sprint(f.ID),
				s.kind.Sprint(f.Type),
				locationStyle(s, f.Location).Sprint(f.Location.ToFeatureTableString()),
				length)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d features on %d sequences\n", len(features), len(order))
	return nil
}
