package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"resume-builder/internal/draft"
)

func TestExportResumeWritesFile(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SetSync(draft.SyncState{RemoteID: 12, SyncedAt: 1}))

	testRawServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/resumes/12/export" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="resume-12.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4 cli"))
	}))

	out := filepath.Join(t.TempDir(), "out.pdf")
	exportResumeID = 0
	exportResumeTemplate = ""
	exportResumeColor = ""
	exportResumeOut = out
	t.Cleanup(func() { exportResumeOut = "" })

	require.NoError(t, runExportResume(nil, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 cli", string(data))
}

func TestExportResumeDefaultsToServerFileName(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SetSync(draft.SyncState{RemoteID: 3, SyncedAt: 1}))

	testRawServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="resume-3.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4 named"))
	}))

	dir := t.TempDir()
	t.Chdir(dir)

	exportResumeID = 0
	exportResumeTemplate = ""
	exportResumeColor = ""
	exportResumeOut = ""

	require.NoError(t, runExportResume(nil, nil))

	data, err := os.ReadFile(filepath.Join(dir, "resume-3.pdf"))
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 named", string(data))
}

func TestExportResumeWithoutIDFails(t *testing.T) {
	_ = testStore(t)

	exportResumeID = 0
	err := runExportResume(nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no resume id")
}

func TestExportLetterSendsGeneratedLetter(t *testing.T) {
	_ = testStore(t)
	require.NoError(t, runSet(nil, []string{"firstName=Jane", "lastName=Doe", "summary=Engineer"}))

	var exported struct {
		CoverLetter string `json:"coverLetter"`
		FileName    string `json:"fileName"`
	}
	testRawServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate-cover-letter":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"coverLetter": "Dear Hiring Manager,\n\nSincerely,\n[Your Name]",
			})
		case "/export/cover-letter":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&exported))
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="letter.pdf"`)
			_, _ = w.Write([]byte("%PDF-1.4 letter"))
		default:
			http.NotFound(w, r)
		}
	}))

	out := filepath.Join(t.TempDir(), "letter.pdf")
	exportLetterRole = ""
	exportLetterCompany = ""
	exportLetterOut = out
	t.Cleanup(func() { exportLetterOut = "cover-letter.pdf" })

	require.NoError(t, runExportLetter(nil, nil))

	require.Equal(t, "letter.pdf", exported.FileName)
	require.Contains(t, exported.CoverLetter, "Jane Doe")
	require.NotContains(t, exported.CoverLetter, "[Your Name]")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 letter", string(data))
}
