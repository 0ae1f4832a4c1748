// Package text flattens a resume draft into plaintext. The projection is the
// only shape the optimization and cover-letter calls ever see, so it has to
// be deterministic: identical drafts produce byte-identical output.
package text

import (
	"strings"

	"resume-builder/resume/model"
)

// FromDraft renders the draft as plaintext in fixed section order: contact
// header, SUMMARY, EXPERIENCE, EDUCATION, SKILLS, PROJECTS. List sections
// with zero entries are omitted entirely rather than emitted empty.
func FromDraft(d model.Draft) string {
	var blocks []string

	if header := headerBlock(d.PersonalInfo); header != "" {
		blocks = append(blocks, header)
	}

	blocks = append(blocks, sectionBlock("SUMMARY", summaryLines(d.PersonalInfo.Summary)))

	if len(d.Experience) > 0 {
		var entries []string
		for _, e := range d.Experience {
			entries = append(entries, entryBlock(
				headline(e.Position, e.Company),
				dateRange(e.StartDate, e.EndDate, e.Current),
				e.Description,
			))
		}
		blocks = append(blocks, sectionBlock("EXPERIENCE", entries))
	}

	if len(d.Education) > 0 {
		var entries []string
		for _, e := range d.Education {
			entries = append(entries, entryBlock(
				headline(e.Degree, e.School),
				dateRange(e.StartDate, e.EndDate, e.Current),
				e.Description,
			))
		}
		blocks = append(blocks, sectionBlock("EDUCATION", entries))
	}

	if len(d.Skills) > 0 {
		blocks = append(blocks, sectionBlock("SKILLS", []string{strings.Join(d.Skills, ", ")}))
	}

	if len(d.Projects) > 0 {
		var entries []string
		for _, p := range d.Projects {
			entries = append(entries, projectBlock(p))
		}
		blocks = append(blocks, sectionBlock("PROJECTS", entries))
	}

	return strings.Join(blocks, "\n\n")
}

func headerBlock(info model.PersonalInfo) string {
	var lines []string
	if name := strings.TrimSpace(strings.TrimSpace(info.FirstName) + " " + strings.TrimSpace(info.LastName)); name != "" {
		lines = append(lines, name)
	}
	if contact := contactLine(info); contact != "" {
		lines = append(lines, contact)
	}
	if info.Website != "" {
		lines = append(lines, info.Website)
	}
	return strings.Join(lines, "\n")
}

// contactLine joins the non-empty of email, phone and linkedin with " | ".
func contactLine(info model.PersonalInfo) string {
	var parts []string
	for _, p := range []string{info.Email, info.Phone, info.LinkedIn} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func summaryLines(summary string) []string {
	if summary == "" {
		return nil
	}
	return []string{summary}
}

// sectionBlock puts the heading on its own line with entries below it,
// blank-line separated.
func sectionBlock(heading string, entries []string) string {
	if len(entries) == 0 {
		return heading
	}
	return heading + "\n" + strings.Join(entries, "\n\n")
}

func entryBlock(headline, dates, description string) string {
	var lines []string
	if headline != "" {
		lines = append(lines, headline)
	}
	if dates != "" {
		lines = append(lines, dates)
	}
	if description != "" {
		lines = append(lines, description)
	}
	return strings.Join(lines, "\n")
}

func projectBlock(p model.ProjectEntry) string {
	var lines []string
	if p.Name != "" {
		lines = append(lines, p.Name)
	}
	if p.Technologies != "" {
		lines = append(lines, "Technologies: "+p.Technologies)
	}
	if p.URL != "" {
		lines = append(lines, p.URL)
	}
	if p.Description != "" {
		lines = append(lines, p.Description)
	}
	return strings.Join(lines, "\n")
}

func headline(role, org string) string {
	switch {
	case role != "" && org != "":
		return role + " at " + org
	case role != "":
		return role
	default:
		return org
	}
}

// dateRange renders "start - end", with "Present" standing in for the end
// date while an entry is marked current.
func dateRange(start, end string, current bool) string {
	switch {
	case current:
		end = "Present"
	case end == "":
		return start
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}
