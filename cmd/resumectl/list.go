package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes stored on the server",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	items, err := newClient().List(context.Background())
	if err != nil {
		return fmt.Errorf("list resumes: %w", err)
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stdout, "No resumes on the server")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTEMPLATE\tUPDATED")
	for _, r := range items {
		name := strings.TrimSpace(r.FirstName + " " + r.LastName)
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, name, r.TemplateStyle, r.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
