package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"resume-builder/resume/model"
)

func renderedDoc(t *testing.T, html []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("parse rendered HTML: %v", err)
	}
	return doc
}

func fullDraft() model.Draft {
	d := model.NewDraft()
	d.PersonalInfo = model.PersonalInfo{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Phone:     "555-0100",
		Website:   "https://ana.dev",
		Summary:   "Backend engineer with 6 years in Go.",
	}
	d.AddExperience(model.ExperienceEntry{
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: "2020-01",
		Current:   true,
	})
	d.AddEducation(model.EducationEntry{
		School:    "State University",
		Degree:    "BSc Computer Science",
		StartDate: "2014-09",
		EndDate:   "2018-06",
	})
	d.AddSkill("Go")
	d.AddSkill("PostgreSQL")
	d.AddProject(model.ProjectEntry{Name: "resume-cli", Technologies: "Go, Cobra"})
	return d
}

func TestResumeHTMLStructure(t *testing.T) {
	html, err := ResumeHTML(fullDraft())
	if err != nil {
		t.Fatalf("ResumeHTML: %v", err)
	}
	doc := renderedDoc(t, html)

	if got := doc.Find("h1").Text(); got != "Ana Silva" {
		t.Fatalf("expected name heading, got %q", got)
	}
	if got := doc.Find("header .contact span").Length(); got != 2 {
		t.Fatalf("expected 2 contact parts, got %d", got)
	}
	headline := doc.Find("section.experience .entry .headline").First().Text()
	if !strings.Contains(headline, "Engineer") || !strings.Contains(headline, "at Acme") {
		t.Fatalf("unexpected experience headline %q", headline)
	}
	dates := doc.Find("section.experience .entry .dates").First().Text()
	if dates != "2020-01 - Present" {
		t.Fatalf("unexpected dates %q", dates)
	}
	if got := doc.Find("ul.skills li").Length(); got != 2 {
		t.Fatalf("expected 2 skill chips, got %d", got)
	}
	if got := doc.Find("section.education .headline").First().Text(); !strings.Contains(got, "State University") {
		t.Fatalf("expected education headline, got %q", got)
	}
}

func TestResumeHTMLOmitsEmptySections(t *testing.T) {
	d := model.NewDraft()
	d.PersonalInfo.FirstName = "Ana"

	html, err := ResumeHTML(d)
	if err != nil {
		t.Fatalf("ResumeHTML: %v", err)
	}
	doc := renderedDoc(t, html)

	for _, sel := range []string{"section.experience", "section.education", "section.skills", "section.projects"} {
		if doc.Find(sel).Length() != 0 {
			t.Fatalf("expected no %s for empty draft", sel)
		}
	}
	if doc.Find("section.summary").Length() != 1 {
		t.Fatal("expected summary section to always render")
	}
}

func TestResumeHTMLNormalizesUnknownStyle(t *testing.T) {
	d := fullDraft()
	d.TemplateStyle = "holographic"
	d.ColorScheme = "octarine"

	html, err := ResumeHTML(d)
	if err != nil {
		t.Fatalf("ResumeHTML: %v", err)
	}
	doc := renderedDoc(t, html)

	class, _ := doc.Find("body").Attr("class")
	if class != model.DefaultTemplateStyle {
		t.Fatalf("expected fallback body class %q, got %q", model.DefaultTemplateStyle, class)
	}
	if !bytes.Contains(html, []byte(PaletteFor(model.DefaultColorScheme).Accent)) {
		t.Fatal("expected fallback accent color in stylesheet")
	}
}

func TestResumeHTMLEscapesUserText(t *testing.T) {
	d := model.NewDraft()
	d.PersonalInfo.FirstName = `<script>alert("x")</script>`

	html, err := ResumeHTML(d)
	if err != nil {
		t.Fatalf("ResumeHTML: %v", err)
	}
	if bytes.Contains(html, []byte("<script>alert")) {
		t.Fatal("expected user text to be escaped")
	}
}

func TestCoverLetterHTMLParagraphs(t *testing.T) {
	d := fullDraft()
	letter := "Dear Acme Hiring Team,\n\nFirst paragraph.\n\nSecond paragraph.\n\nSincerely,\n[Your Name]"

	html, err := CoverLetterHTML(letter, d)
	if err != nil {
		t.Fatalf("CoverLetterHTML: %v", err)
	}
	doc := renderedDoc(t, html)

	paras := doc.Find(".letter p")
	if paras.Length() != 4 {
		t.Fatalf("expected 4 paragraphs, got %d", paras.Length())
	}
	if got := paras.First().Text(); got != "Dear Acme Hiring Team," {
		t.Fatalf("unexpected greeting paragraph %q", got)
	}
	if !strings.Contains(doc.Find(".letter").Text(), "[Your Name]") {
		t.Fatal("expected placeholder preserved in rendered letter")
	}
	if got := doc.Find("header h1").Text(); got != "Ana Silva" {
		t.Fatalf("expected sender name in header, got %q", got)
	}
}
