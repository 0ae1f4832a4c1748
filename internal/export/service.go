package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// RecordSource loads stored resumes for export.
type RecordSource interface {
	GetByID(ctx context.Context, userID string, id int64) (resumes.Record, error)
}

// Service renders stored resumes and cover letters to PDF artifacts.
type Service struct {
	Records  RecordSource
	Renderer Renderer
	Store    object.Store
}

// Options override the stored template and color for a single export.
// Unknown values fall back silently at render time.
type Options struct {
	TemplateStyle string
	ColorScheme   string
}

// Download is a finished artifact ready to stream to the client.
type Download struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Resume renders a stored resume to PDF, persists the artifact and returns
// it for streaming. Absent records propagate resumes.ErrNotFound.
func (s *Service) Resume(ctx context.Context, userID string, id int64, opts Options) (Download, error) {
	rec, err := s.Records.GetByID(ctx, userID, id)
	if err != nil {
		return Download{}, err
	}

	draft := rec.Draft()
	if opts.TemplateStyle != "" {
		draft.TemplateStyle = opts.TemplateStyle
	}
	if opts.ColorScheme != "" {
		draft.ColorScheme = opts.ColorScheme
	}

	doc, err := render.ResumeHTML(draft)
	if err != nil {
		return Download{}, fmt.Errorf("render resume %d: %w", id, err)
	}

	return s.produce(ctx, userID, fmt.Sprintf("resume-%d.pdf", id), doc)
}

// CoverLetter renders cover-letter text to PDF on the letter page format.
func (s *Service) CoverLetter(ctx context.Context, userID, letter, fileName string) (Download, error) {
	if strings.TrimSpace(letter) == "" {
		return Download{}, fmt.Errorf("%w: coverLetter is required", ErrInvalidInput)
	}

	if fileName == "" {
		fileName = "cover-letter.pdf"
	}
	clean, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Download{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !strings.HasSuffix(strings.ToLower(clean), ".pdf") {
		clean += ".pdf"
	}

	doc, err := render.CoverLetterHTML(letter, model.NewDraft())
	if err != nil {
		return Download{}, fmt.Errorf("render cover letter: %w", err)
	}

	return s.produce(ctx, userID, clean, doc)
}

// produce prints the page, persists the artifact under the caller's export
// prefix and reopens it for streaming. Nothing is stored when printing
// fails.
func (s *Service) produce(ctx context.Context, userID, fileName string, doc []byte) (Download, error) {
	metrics.IncExportStarted()
	start := time.Now()

	pdf, err := s.Renderer.RenderPDF(ctx, doc)
	if err != nil {
		metrics.IncExportFailed()
		return Download{}, fmt.Errorf("print %s: %w", fileName, err)
	}

	key := exportKey(userID, fileName)
	if _, err := s.Store.Save(ctx, key, "application/pdf", bytes.NewReader(pdf)); err != nil {
		metrics.IncExportFailed()
		return Download{}, fmt.Errorf("store artifact %s: %w", key, err)
	}

	body, err := s.Store.Open(ctx, key)
	if err != nil {
		metrics.IncExportFailed()
		return Download{}, fmt.Errorf("open artifact %s: %w", key, err)
	}

	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))
	return Download{
		FileName:    fileName,
		ContentType: "application/pdf",
		Size:        int64(len(pdf)),
		Body:        body,
	}, nil
}

func exportKey(userID, fileName string) string {
	return "exports/" + util.HashUserKey(userID) + "/" + fileName
}
