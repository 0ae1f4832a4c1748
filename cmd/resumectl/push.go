package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/apiclient"
	"resume-builder/internal/draft"
	"resume-builder/resume/model"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Save the local draft to the server",
	Long: `Push sends the whole local draft to the server, creating a resume on the
first push and updating the same record afterwards. The remote id is
remembered in the draft directory.`,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func runPush(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	printWarnings(d)

	res, err := pushDraft(context.Background(), store, newClient(), d)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Pushed draft to resume %d\n", res.Resume.ID)
	return nil
}

// pushDraft saves the draft remotely, creating or updating depending on
// whether a remote id is on record. A remote record deleted from another
// device is recreated. The sync sidecar only advances for non-stale
// responses.
func pushDraft(ctx context.Context, store *draft.Store, client *apiclient.Client, d model.Draft) (apiclient.SaveResult, error) {
	payload := apiclient.PayloadFromDraft(d)

	var (
		res apiclient.SaveResult
		err error
	)
	if remoteID := store.Sync().RemoteID; remoteID != 0 {
		res, err = client.Update(ctx, remoteID, payload)
		if errors.Is(err, apiclient.ErrNotFound) {
			res, err = client.Create(ctx, payload)
		}
	} else {
		res, err = client.Create(ctx, payload)
	}
	if err != nil {
		return apiclient.SaveResult{}, fmt.Errorf("save draft: %w", err)
	}

	if res.Stale {
		return res, nil
	}
	if err := store.SetSync(draft.SyncState{
		RemoteID: res.Resume.ID,
		SyncedAt: res.Resume.UpdatedAt.UnixMilli(),
	}); err != nil {
		return res, err
	}
	return res, nil
}
