// Package render turns a resume draft into a standalone HTML page, ready for
// preview in a browser or printing to PDF. Template style and color scheme
// are normalized here, so stale stored values render with defaults instead
// of failing.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/resume/model"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFiles, "templates/*.tmpl"))

type styleView struct {
	Class  string
	Font   template.CSS
	Accent template.CSS
	Dark   template.CSS
	Muted  template.CSS
}

type entryView struct {
	Title       string
	Org         string
	Dates       string
	Description string
}

type projectView struct {
	Name         string
	Technologies string
	URL          string
	Description  string
}

type resumeView struct {
	Name       string
	Contact    []string
	Website    string
	Summary    string
	Experience []entryView
	Education  []entryView
	Skills     []string
	Projects   []projectView
	Style      styleView
}

type letterView struct {
	Name       string
	Contact    []string
	Paragraphs []string
	Style      styleView
}

// ResumeHTML renders the draft as a complete HTML page.
func ResumeHTML(d model.Draft) ([]byte, error) {
	view := resumeView{
		Name:    displayName(d.PersonalInfo),
		Contact: contactParts(d.PersonalInfo),
		Website: d.PersonalInfo.Website,
		Summary: d.PersonalInfo.Summary,
		Skills:  d.Skills,
		Style:   styleFor(d),
	}
	for _, e := range d.Experience {
		view.Experience = append(view.Experience, entryView{
			Title:       e.Position,
			Org:         e.Company,
			Dates:       formatDates(e.StartDate, e.EndDate, e.Current),
			Description: e.Description,
		})
	}
	for _, e := range d.Education {
		view.Education = append(view.Education, entryView{
			Title:       e.Degree,
			Org:         e.School,
			Dates:       formatDates(e.StartDate, e.EndDate, e.Current),
			Description: e.Description,
		})
	}
	for _, p := range d.Projects {
		view.Projects = append(view.Projects, projectView{
			Name:         p.Name,
			Technologies: p.Technologies,
			URL:          p.URL,
			Description:  p.Description,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "resume.html.tmpl", view); err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}
	return buf.Bytes(), nil
}

// CoverLetterHTML renders a generated letter as a printable page, reusing the
// draft's contact header and visual style.
func CoverLetterHTML(letter string, d model.Draft) ([]byte, error) {
	view := letterView{
		Name:       displayName(d.PersonalInfo),
		Contact:    contactParts(d.PersonalInfo),
		Paragraphs: splitParagraphs(letter),
		Style:      styleFor(d),
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "cover_letter.html.tmpl", view); err != nil {
		return nil, fmt.Errorf("render cover letter: %w", err)
	}
	return buf.Bytes(), nil
}

func styleFor(d model.Draft) styleView {
	class := model.NormalizeTemplateStyle(d.TemplateStyle)
	palette := PaletteFor(d.ColorScheme)
	return styleView{
		Class:  class,
		Font:   template.CSS(FontFor(class)),
		Accent: template.CSS(palette.Accent),
		Dark:   template.CSS(palette.Dark),
		Muted:  template.CSS(palette.Muted),
	}
}

func displayName(info model.PersonalInfo) string {
	return strings.TrimSpace(strings.TrimSpace(info.FirstName) + " " + strings.TrimSpace(info.LastName))
}

func contactParts(info model.PersonalInfo) []string {
	var parts []string
	for _, p := range []string{info.Email, info.Phone, info.LinkedIn} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func formatDates(start, end string, current bool) string {
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

func splitParagraphs(letter string) []string {
	var out []string
	for _, p := range strings.Split(letter, "\n\n") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
