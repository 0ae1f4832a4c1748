// renderdemo renders a sample draft through every resume template and
// writes the HTML pages, the plaintext projection and the draft JSON to
// disk, for checking template changes without a running server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/text"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for rendered previews")
	flag.Parse()

	if err := writeOutputs(*outDir, sampleDraft()); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote previews to %s\n", *outDir)
}

func writeOutputs(outDir string, d model.Draft) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	styles := []string{
		model.TemplateProfessional,
		model.TemplateModern,
		model.TemplateMinimalist,
		model.TemplateCreative,
	}
	for _, style := range styles {
		d.TemplateStyle = style
		page, err := render.ResumeHTML(d)
		if err != nil {
			return fmt.Errorf("render %s: %w", style, err)
		}
		if err := validateRendered(page); err != nil {
			return fmt.Errorf("render %s: %w", style, err)
		}
		path := filepath.Join(outDir, "sample_resume_"+style+".html")
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return err
		}
	}

	letter, err := render.CoverLetterHTML(sampleLetter(), d)
	if err != nil {
		return fmt.Errorf("render cover letter: %w", err)
	}
	if err := validateRendered(letter); err != nil {
		return fmt.Errorf("render cover letter: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "sample_cover_letter.html"), letter, 0o644); err != nil {
		return err
	}

	projection := text.FromDraft(d)
	if err := os.WriteFile(filepath.Join(outDir, "sample_resume.txt"), []byte(projection), 0o644); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "sample_draft.json"), payload, 0o644)
}

func sampleDraft() model.Draft {
	d := model.NewDraft()
	d.PersonalInfo = model.PersonalInfo{
		FirstName: "Jordan",
		LastName:  "Lee",
		Email:     "jordan.lee@example.com",
		Phone:     "+1-555-0102",
		Summary:   "Backend engineer with 8+ years of experience building resilient APIs and data services. Led platform modernization initiatives spanning cloud migration and observability adoption.",
		Website:   "https://github.com/jordanlee",
		LinkedIn:  "https://www.linkedin.com/in/jordanlee",
	}
	d.AddExperience(model.ExperienceEntry{
		Company:     "Acme Logistics",
		Position:    "Senior Backend Engineer",
		StartDate:   "2021-04",
		Current:     true,
		Description: "Designed a routing service that reduced shipment latency by 18%. Implemented distributed tracing to cut incident triage time by 35%.",
	})
	d.AddExperience(model.ExperienceEntry{
		Company:     "Blue Harbor Systems",
		Position:    "Backend Engineer",
		StartDate:   "2018-01",
		EndDate:     "2021-03",
		Description: "Built event-driven ingestion pipelines for compliance data feeds.",
	})
	d.AddEducation(model.EducationEntry{
		School:    "University of Texas at Austin",
		Degree:    "BSc Computer Science",
		StartDate: "2012-09",
		EndDate:   "2016-05",
	})
	d.AddProject(model.ProjectEntry{
		Name:         "tracegrid",
		Technologies: "Go, OpenTelemetry, ClickHouse",
		URL:          "https://github.com/jordanlee/tracegrid",
		Description:  "Self-hosted trace aggregation with sampled retention policies.",
	})
	for _, s := range []string{"Go", "PostgreSQL", "AWS", "Docker", "Kubernetes", "Terraform"} {
		d.AddSkill(s)
	}
	d.TargetRole = "Staff Backend Engineer"
	return d
}

func sampleLetter() string {
	return strings.Join([]string{
		"Dear Acme Logistics Hiring Team,",
		"I am writing to express my strong interest in the Staff Backend Engineer position.",
		"My background spans resilient API design, data services and platform migrations.",
		"I would welcome the chance to discuss how that experience maps to your roadmap.",
		"Sincerely,\nJordan Lee",
	}, "\n\n")
}

// validateRendered rejects output with unresolved template actions, the
// regression this tool exists to catch.
func validateRendered(page []byte) error {
	s := string(page)
	if pos := tokenIndex(s); pos != -1 {
		return fmt.Errorf("unresolved template tokens near: %s", snippetAround(s, pos, 200))
	}
	return nil
}

func tokenIndex(s string) int {
	if idx := strings.Index(s, "{{"); idx != -1 {
		return idx
	}
	if idx := strings.Index(s, "}}"); idx != -1 {
		return idx
	}
	return -1
}

func snippetAround(s string, pos, maxLen int) string {
	if pos < 0 {
		return ""
	}
	start := pos - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
