package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the local draft",
	Long: `Clear removes the stored draft and the remembered remote id. The next
edit starts from the default empty draft. Nothing on the server changes.`,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	fmt.Fprintln(os.Stdout, "Local draft cleared")
	return nil
}
