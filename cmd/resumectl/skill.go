package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skills list",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <skill> [skill ...]",
	Short: "Append skills to the draft",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSkillAdd,
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove a skill from the draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillRemove,
}

func init() {
	skillCmd.AddCommand(skillAddCmd, skillRemoveCmd)
	rootCmd.AddCommand(skillCmd)
}

func runSkillAdd(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	for _, s := range args {
		d.AddSkill(s)
	}
	if _, err := store.Save(model.DraftPatch{Skills: &d.Skills}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Skills: %s\n", strings.Join(d.Skills, ", "))
	return nil
}

func runSkillRemove(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	if !d.RemoveSkill(args[0]) {
		return fmt.Errorf("skill %q is not on the draft", args[0])
	}
	if _, err := store.Save(model.DraftPatch{Skills: &d.Skills}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed skill %q\n", args[0])
	return nil
}
