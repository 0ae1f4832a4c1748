package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
	"resume-builder/resume/text"
)

var (
	optimizeRole   string
	optimizeNoPush bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize the draft for applicant tracking systems",
	Long: `Optimize sends the plaintext projection of the draft to the service and
prints the optimized text. The returned score, the target role and the
optimized flag are merged into the draft, which is then pushed.`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeRole, "role", "", "target role to optimize toward (draft target role when empty)")
	optimizeCmd.Flags().BoolVar(&optimizeNoPush, "no-push", false, "keep the result local, skip the remote save")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	role := optimizeRole
	if role == "" {
		role = d.TargetRole
	}

	ctx := context.Background()
	client := newClient()
	result, err := client.Optimize(ctx, text.FromDraft(d), role)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	optimized := true
	patch := model.DraftPatch{
		IsAtsOptimized: &optimized,
		AtsScore:       &result.AtsScore,
	}
	if role != "" {
		patch.TargetRole = &role
	}
	merged, err := store.Save(patch)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, result.OptimizedText)
	fmt.Fprintf(os.Stdout, "\nATS score: %d\n", result.AtsScore)

	if optimizeNoPush {
		return nil
	}
	res, err := pushDraft(ctx, store, client, merged)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Pushed optimized draft to resume %d\n", res.Resume.ID)
	return nil
}
