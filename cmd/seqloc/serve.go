package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/seqloc/pkg/datastore"
	"github.com/praetorian-inc/seqloc/pkg/remap"
	"github.com/praetorian-inc/seqloc/pkg/serve"
	"github.com/praetorian-inc/seqloc/pkg/store"
	"github.com/spf13/cobra"
)

var serveDatastore string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming location server",
	Long: `Run seqloc as a long-lived streaming server that accepts location
requests via stdin and writes responses to stdout using NDJSON format.

The process runs until stdin closes, a close request arrives, or SIGTERM
is received.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDatastore, "datastore", ":memory:", "Feature datastore backing truncate_seq requests")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := store.New(store.Config{Path: datastore.ResolveDB(serveDatastore)})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}

	core, err := remap.NewCore(s, debugLogger(os.Stderr))
	if err != nil {
		s.Close()
		return err
	}
	defer core.Close()

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	srv := serve.NewServer(core, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
