package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/draft"
)

var pullID int64

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local draft with a resume from the server",
	Long: `Pull fetches a resume and replaces the local draft with it. Without --id
the last pushed resume is pulled. Local edits that were never pushed are
overwritten.`,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().Int64Var(&pullID, "id", 0, "resume id to pull (last pushed id when omitted)")
	rootCmd.AddCommand(pullCmd)
}

func runPull(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	id := pullID
	if id == 0 {
		id = store.Sync().RemoteID
	}
	if id == 0 {
		return fmt.Errorf("no resume id on record, pass --id or push first")
	}

	rec, err := newClient().Get(context.Background(), id)
	if err != nil {
		return fmt.Errorf("fetch resume %d: %w", id, err)
	}

	// Clear first so fields the record leaves at defaults do not keep
	// their old local values.
	if err := store.Clear(); err != nil {
		return fmt.Errorf("reset local draft: %w", err)
	}
	merged, err := store.Save(rec.DraftPatch())
	if err != nil {
		return err
	}
	if err := store.SetSync(draft.SyncState{RemoteID: rec.ID, SyncedAt: merged.LastUpdated}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Pulled resume %d into the local draft\n", rec.ID)
	return nil
}
