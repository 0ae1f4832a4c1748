package export

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/storage/object/local"
)

type stubRenderer struct {
	pdf     []byte
	err     error
	gotHTML []byte
}

func (r *stubRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	_ = ctx
	r.gotHTML = html
	if r.err != nil {
		return nil, r.err
	}
	return r.pdf, nil
}

func seedRecord(t *testing.T, repo *resumes.MemoryRepo, userID string) resumes.Record {
	t.Helper()
	rec := resumes.NewRecord(userID)
	rec.FirstName = "Jane"
	rec.LastName = "Doe"
	rec.Email = "jane@example.com"
	created, err := repo.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("create record: %v", err)
	}
	return created
}

func TestExportResumeProducesArtifact(t *testing.T) {
	dir := t.TempDir()
	repo := resumes.NewMemoryRepo()
	rec := seedRecord(t, repo, "default-user")
	renderer := &stubRenderer{pdf: []byte("%PDF-1.4 stub resume")}
	svc := &Service{Records: repo, Renderer: renderer, Store: local.New(dir)}

	download, err := svc.Resume(context.Background(), "default-user", rec.ID, Options{})
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	defer download.Body.Close()

	if download.FileName == "" || !strings.HasSuffix(download.FileName, ".pdf") {
		t.Fatalf("expected a pdf file name, got %q", download.FileName)
	}
	if download.ContentType != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", download.ContentType)
	}
	body, err := io.ReadAll(download.Body)
	if err != nil {
		t.Fatalf("read download: %v", err)
	}
	if string(body) != "%PDF-1.4 stub resume" {
		t.Fatalf("unexpected artifact body %q", body)
	}
	if download.Size != int64(len(body)) {
		t.Fatalf("expected size %d, got %d", len(body), download.Size)
	}
	if !strings.Contains(string(renderer.gotHTML), "Jane Doe") {
		t.Fatalf("expected rendered page to carry the draft name")
	}

	// The artifact persists under the caller's export prefix.
	if countFiles(t, dir) != 1 {
		t.Fatalf("expected exactly one stored artifact")
	}
}

func TestExportResumeNotFound(t *testing.T) {
	svc := &Service{
		Records:  resumes.NewMemoryRepo(),
		Renderer: &stubRenderer{pdf: []byte("pdf")},
		Store:    local.New(t.TempDir()),
	}

	_, err := svc.Resume(context.Background(), "default-user", 42, Options{})
	if !errors.Is(err, resumes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExportResumeRenderFailureStoresNothing(t *testing.T) {
	dir := t.TempDir()
	repo := resumes.NewMemoryRepo()
	rec := seedRecord(t, repo, "default-user")
	svc := &Service{
		Records:  repo,
		Renderer: &stubRenderer{err: errors.New("browser crashed")},
		Store:    local.New(dir),
	}

	_, err := svc.Resume(context.Background(), "default-user", rec.ID, Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if countFiles(t, dir) != 0 {
		t.Fatalf("expected no partial artifact after a render failure")
	}
}

func TestExportResumeTemplateOverride(t *testing.T) {
	repo := resumes.NewMemoryRepo()
	rec := seedRecord(t, repo, "default-user")
	renderer := &stubRenderer{pdf: []byte("pdf")}
	svc := &Service{Records: repo, Renderer: renderer, Store: local.New(t.TempDir())}

	download, err := svc.Resume(context.Background(), "default-user", rec.ID, Options{
		TemplateStyle: "professional",
		ColorScheme:   "green",
	})
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	download.Body.Close()

	if !strings.Contains(string(renderer.gotHTML), `<body class="professional">`) {
		t.Fatalf("expected override to reach the renderer")
	}
}

func TestExportResumeInvalidOverrideFallsBack(t *testing.T) {
	repo := resumes.NewMemoryRepo()
	rec := seedRecord(t, repo, "default-user")
	renderer := &stubRenderer{pdf: []byte("pdf")}
	svc := &Service{Records: repo, Renderer: renderer, Store: local.New(t.TempDir())}

	download, err := svc.Resume(context.Background(), "default-user", rec.ID, Options{TemplateStyle: "brutalist"})
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	download.Body.Close()

	if !strings.Contains(string(renderer.gotHTML), `<body class="modern">`) {
		t.Fatalf("expected unknown style to fall back to the default")
	}
}

func TestExportCoverLetterRequiresText(t *testing.T) {
	svc := &Service{Renderer: &stubRenderer{pdf: []byte("pdf")}, Store: local.New(t.TempDir())}

	_, err := svc.CoverLetter(context.Background(), "default-user", "  ", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportCoverLetterFileNames(t *testing.T) {
	svc := &Service{Renderer: &stubRenderer{pdf: []byte("pdf")}, Store: local.New(t.TempDir())}

	cases := []struct {
		in   string
		want string
	}{
		{"", "cover-letter.pdf"},
		{"acme-letter", "acme-letter.pdf"},
		{"acme-letter.PDF", "acme-letter.PDF"},
	}
	for _, tc := range cases {
		download, err := svc.CoverLetter(context.Background(), "default-user", "Dear Hiring Manager,\n\nBody.", tc.in)
		if err != nil {
			t.Fatalf("CoverLetter(%q): %v", tc.in, err)
		}
		download.Body.Close()
		if download.FileName != tc.want {
			t.Fatalf("CoverLetter(%q): expected file name %q, got %q", tc.in, tc.want, download.FileName)
		}
	}

	if _, err := svc.CoverLetter(context.Background(), "default-user", "letter", "../escape.pdf"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected traversal names rejected, got %v", err)
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && !strings.HasPrefix(filepath.Base(path), ".") {
			count++
		}
		return nil
	})
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("walk store dir: %v", err)
	}
	return count
}
