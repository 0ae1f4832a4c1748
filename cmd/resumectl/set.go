package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
)

var setCmd = &cobra.Command{
	Use:   "set field=value [field=value ...]",
	Short: "Set draft fields",
	Long: `Set updates draft fields by their JSON name, for example:

  resumectl set firstName=Ada lastName=Lovelace email=ada@example.com
  resumectl set templateStyle=creative colorScheme=green
  resumectl set summary="Engineer with a decade of distributed systems work"

Fields: firstName, lastName, email, phone, summary, website, linkedin,
templateStyle, colorScheme, targetRole.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	var patch model.DraftPatch
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("argument %q is not field=value", arg)
		}
		if err := setField(&patch, field, value); err != nil {
			return err
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	merged, err := store.Save(patch)
	if err != nil {
		return err
	}

	printWarnings(merged)
	fmt.Fprintln(os.Stdout, "Draft updated")
	return nil
}

// setField routes one field=value pair into the patch. Template and color
// values outside the known sets fall back to the defaults, with a warning
// so the fallback is visible.
func setField(patch *model.DraftPatch, field, value string) error {
	info := func() *model.PersonalInfoPatch {
		if patch.PersonalInfo == nil {
			patch.PersonalInfo = &model.PersonalInfoPatch{}
		}
		return patch.PersonalInfo
	}

	v := value
	switch field {
	case "firstName":
		info().FirstName = &v
	case "lastName":
		info().LastName = &v
	case "email":
		info().Email = &v
	case "phone":
		info().Phone = &v
	case "summary":
		info().Summary = &v
	case "website":
		info().Website = &v
	case "linkedin":
		info().LinkedIn = &v
	case "targetRole":
		patch.TargetRole = &v
	case "templateStyle":
		normalized := model.NormalizeTemplateStyle(v)
		if normalized != v {
			fmt.Fprintf(os.Stderr, "warning: unknown template style %q, using %q\n", v, normalized)
		}
		patch.TemplateStyle = &normalized
	case "colorScheme":
		normalized := model.NormalizeColorScheme(v)
		if normalized != v {
			fmt.Fprintf(os.Stderr, "warning: unknown color scheme %q, using %q\n", v, normalized)
		}
		patch.ColorScheme = &normalized
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
