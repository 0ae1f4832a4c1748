package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a list entry to the draft",
}

var addEducationCmd = &cobra.Command{
	Use:   "education",
	Short: "Add an education entry",
	RunE:  runAddEducation,
}

var (
	eduSchool      string
	eduDegree      string
	eduStart       string
	eduEnd         string
	eduDescription string
	eduCurrent     bool
)

var addExperienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Add a work experience entry",
	RunE:  runAddExperience,
}

var (
	expCompany     string
	expPosition    string
	expStart       string
	expEnd         string
	expDescription string
	expCurrent     bool
)

var addProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Add a project entry",
	RunE:  runAddProject,
}

var (
	projName         string
	projTechnologies string
	projURL          string
	projDescription  string
)

func init() {
	addEducationCmd.Flags().StringVar(&eduSchool, "school", "", "school name (required)")
	addEducationCmd.Flags().StringVar(&eduDegree, "degree", "", "degree earned (required)")
	addEducationCmd.Flags().StringVar(&eduStart, "start", "", "start date, YYYY-MM")
	addEducationCmd.Flags().StringVar(&eduEnd, "end", "", "end date, YYYY-MM")
	addEducationCmd.Flags().StringVar(&eduDescription, "description", "", "free-form description")
	addEducationCmd.Flags().BoolVar(&eduCurrent, "current", false, "still enrolled")
	if err := addEducationCmd.MarkFlagRequired("school"); err != nil {
		panic(fmt.Sprintf("failed to mark school flag as required: %v", err))
	}
	if err := addEducationCmd.MarkFlagRequired("degree"); err != nil {
		panic(fmt.Sprintf("failed to mark degree flag as required: %v", err))
	}

	addExperienceCmd.Flags().StringVar(&expCompany, "company", "", "company name (required)")
	addExperienceCmd.Flags().StringVar(&expPosition, "position", "", "position held (required)")
	addExperienceCmd.Flags().StringVar(&expStart, "start", "", "start date, YYYY-MM")
	addExperienceCmd.Flags().StringVar(&expEnd, "end", "", "end date, YYYY-MM")
	addExperienceCmd.Flags().StringVar(&expDescription, "description", "", "free-form description")
	addExperienceCmd.Flags().BoolVar(&expCurrent, "current", false, "still in this role")
	if err := addExperienceCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := addExperienceCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}

	addProjectCmd.Flags().StringVar(&projName, "name", "", "project name (required)")
	addProjectCmd.Flags().StringVar(&projTechnologies, "technologies", "", "technologies used")
	addProjectCmd.Flags().StringVar(&projURL, "url", "", "project URL")
	addProjectCmd.Flags().StringVar(&projDescription, "description", "", "free-form description")
	if err := addProjectCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	addCmd.AddCommand(addEducationCmd, addExperienceCmd, addProjectCmd)
	rootCmd.AddCommand(addCmd)
}

func runAddEducation(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	entry := d.AddEducation(model.EducationEntry{
		School:      eduSchool,
		Degree:      eduDegree,
		StartDate:   eduStart,
		EndDate:     eduEnd,
		Description: eduDescription,
		Current:     eduCurrent,
	})

	merged, err := store.Save(model.DraftPatch{Education: &d.Education})
	if err != nil {
		return err
	}

	printWarnings(merged)
	fmt.Fprintf(os.Stdout, "Added education %s\n", entry.ID)
	return nil
}

func runAddExperience(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	entry := d.AddExperience(model.ExperienceEntry{
		Company:     expCompany,
		Position:    expPosition,
		StartDate:   expStart,
		EndDate:     expEnd,
		Description: expDescription,
		Current:     expCurrent,
	})

	merged, err := store.Save(model.DraftPatch{Experience: &d.Experience})
	if err != nil {
		return err
	}

	printWarnings(merged)
	fmt.Fprintf(os.Stdout, "Added experience %s\n", entry.ID)
	return nil
}

func runAddProject(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	d := store.Load()
	entry := d.AddProject(model.ProjectEntry{
		Name:         projName,
		Technologies: projTechnologies,
		URL:          projURL,
		Description:  projDescription,
	})

	merged, err := store.Save(model.DraftPatch{Projects: &d.Projects})
	if err != nil {
		return err
	}

	printWarnings(merged)
	fmt.Fprintf(os.Stdout, "Added project %s\n", entry.ID)
	return nil
}
