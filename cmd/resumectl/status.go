package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show local draft and server status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	state := store.Sync()

	fmt.Fprintf(os.Stdout, "Draft:  last updated %s\n", formatMillis(d.LastUpdated))
	if state.RemoteID != 0 {
		fmt.Fprintf(os.Stdout, "Remote: resume %d, synced %s\n", state.RemoteID, formatMillis(state.SyncedAt))
	} else {
		fmt.Fprintln(os.Stdout, "Remote: never pushed")
	}

	if err := newClient().Health(context.Background()); err != nil {
		fmt.Fprintf(os.Stdout, "Server: unreachable (%v)\n", err)
		return nil
	}
	fmt.Fprintln(os.Stdout, "Server: ok")
	return nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "never"
	}
	return time.UnixMilli(ms).Format(time.RFC3339)
}
