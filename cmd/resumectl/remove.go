package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a list entry from the draft",
	Long: `Remove deletes one entry by the id shown in resumectl show. Entries are
matched by id only, never by position or content.`,
}

var removeEducationCmd = &cobra.Command{
	Use:   "education <id>",
	Short: "Remove an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveEducation,
}

var removeExperienceCmd = &cobra.Command{
	Use:   "experience <id>",
	Short: "Remove a work experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveExperience,
}

var removeProjectCmd = &cobra.Command{
	Use:   "project <id>",
	Short: "Remove a project entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveProject,
}

func init() {
	removeCmd.AddCommand(removeEducationCmd, removeExperienceCmd, removeProjectCmd)
	rootCmd.AddCommand(removeCmd)
}

func runRemoveEducation(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	if !d.RemoveEducation(args[0]) {
		return fmt.Errorf("no education entry with id %s", args[0])
	}
	if _, err := store.Save(model.DraftPatch{Education: &d.Education}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed education %s\n", args[0])
	return nil
}

func runRemoveExperience(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	if !d.RemoveExperience(args[0]) {
		return fmt.Errorf("no experience entry with id %s", args[0])
	}
	if _, err := store.Save(model.DraftPatch{Experience: &d.Experience}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed experience %s\n", args[0])
	return nil
}

func runRemoveProject(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	if !d.RemoveProject(args[0]) {
		return fmt.Errorf("no project entry with id %s", args[0])
	}
	if _, err := store.Save(model.DraftPatch{Projects: &d.Projects}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed project %s\n", args[0])
	return nil
}
