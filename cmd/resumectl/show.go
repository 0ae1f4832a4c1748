package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/text"
)

var showText bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the local draft",
	Long: `Show prints the local draft as JSON. With --text it prints the plaintext
projection instead, the exact shape the optimization and cover letter
calls receive.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showText, "text", false, "print the plaintext projection instead of JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	d := store.Load()

	if showText {
		fmt.Fprintln(os.Stdout, text.FromDraft(d))
		return nil
	}

	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
