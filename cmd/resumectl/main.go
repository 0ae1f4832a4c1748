// Package main is resumectl, the command line client for the resume
// service. It owns the local draft slot, mirrors it to the server, and
// drives the optimization, cover letter and export endpoints.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-builder/internal/apiclient"
	"resume-builder/internal/draft"
	"resume-builder/resume/model"
)

var (
	dataDir   string
	serverURL string
	userID    string
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Edit, sync and export resumes from the command line",
	Long: `resumectl keeps one resume draft on local disk, mirrors it to the resume
service, and drives the optimization, cover letter and PDF export
endpoints.

Every edit lands in the local draft first, so a failed network call never
loses work. Use push and pull to move the draft to and from the server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the local draft (default ~/.resume-builder)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080/api", "base URL of the resume service API")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "identity sent as X-User-Id (server default when empty)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the draft store under the configured data directory.
func openStore() (*draft.Store, error) {
	dir := dataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".resume-builder")
	}
	return draft.NewStore(draft.NewFileBackend(dir)), nil
}

// newClient builds the API client from the persistent flags.
func newClient() *apiclient.Client {
	return apiclient.New(serverURL, userID)
}

// printWarnings surfaces field validation findings for a saved draft.
// Warnings never block a save, the draft persists as entered.
func printWarnings(d model.Draft) {
	for _, fe := range d.Validate() {
		fmt.Fprintf(os.Stderr, "warning: %s %s\n", fe.Field, fe.Message)
	}
}
