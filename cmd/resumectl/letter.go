package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
	"resume-builder/resume/text"
)

var (
	letterRole    string
	letterCompany string
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Generate a cover letter from the draft",
	Long: `Letter asks the service for a cover letter built from the draft's
plaintext projection and prints it. The signature placeholder is filled
with the draft's name when the draft has one.`,
	RunE: runLetter,
}

func init() {
	letterCmd.Flags().StringVar(&letterRole, "role", "", "role the letter applies for (draft target role when empty)")
	letterCmd.Flags().StringVar(&letterCompany, "company", "", "company to address the letter to")
	rootCmd.AddCommand(letterCmd)
}

func runLetter(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	role := letterRole
	if role == "" {
		role = d.TargetRole
	}

	letter, err := newClient().GenerateCoverLetter(context.Background(), text.FromDraft(d), role, letterCompany)
	if err != nil {
		return fmt.Errorf("generate cover letter: %w", err)
	}

	fmt.Fprintln(os.Stdout, personalize(letter, d))
	return nil
}

// personalize fills the "[Your Name]" signature placeholder with the
// draft's name. The placeholder stays when the draft has no name yet.
func personalize(letter string, d model.Draft) string {
	name := strings.TrimSpace(strings.TrimSpace(d.PersonalInfo.FirstName) + " " + strings.TrimSpace(d.PersonalInfo.LastName))
	if name == "" {
		return letter
	}
	return strings.ReplaceAll(letter, "[Your Name]", name)
}
