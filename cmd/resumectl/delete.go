package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/draft"
)

var deleteID int64

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a resume on the server",
	Long: `Delete removes a resume from the server. The local draft stays intact;
only the remembered remote id is forgotten when it was the deleted one.`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().Int64Var(&deleteID, "id", 0, "resume id to delete (last pushed id when omitted)")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	tracked := store.Sync().RemoteID
	id := deleteID
	if id == 0 {
		id = tracked
	}
	if id == 0 {
		return fmt.Errorf("no resume id on record, pass --id or push first")
	}

	if err := newClient().Delete(context.Background(), id); err != nil {
		return fmt.Errorf("delete resume %d: %w", id, err)
	}

	if id == tracked {
		if err := store.SetSync(draft.SyncState{}); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Deleted resume %d\n", id)
	return nil
}
