package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	n, err := store.Save(context.Background(), "exports/ab12/resume-7.pdf", "application/pdf", strings.NewReader("%PDF-1.7 test"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != int64(len("%PDF-1.7 test")) {
		t.Fatalf("expected %d bytes written, got %d", len("%PDF-1.7 test"), n)
	}

	rc, err := store.Open(context.Background(), "exports/ab12/resume-7.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(data) != "%PDF-1.7 test" {
		t.Fatalf("unexpected artifact contents: %q", data)
	}
}

func TestSaveReplacesExistingKey(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.Save(ctx, "exports/ab12/resume-7.pdf", "application/pdf", strings.NewReader("first")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := store.Save(ctx, "exports/ab12/resume-7.pdf", "application/pdf", strings.NewReader("second")); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	rc, err := store.Open(ctx, "exports/ab12/resume-7.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "second" {
		t.Fatalf("expected replaced contents, got %q", data)
	}
}

func TestSaveRejectsTraversalKeys(t *testing.T) {
	base := t.TempDir()
	store := New(base)
	ctx := context.Background()

	for _, key := range []string{"../outside.pdf", "/abs/path.pdf", "exports/../../outside.pdf", "."} {
		if _, err := store.Save(ctx, key, "application/pdf", strings.NewReader("x")); err == nil {
			t.Fatalf("expected Save to reject key %q", key)
		}
		if _, err := store.Open(ctx, key); err == nil {
			t.Fatalf("expected Open to reject key %q", key)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(base))
	if err == nil {
		for _, e := range entries {
			if e.Name() == "outside.pdf" {
				t.Fatal("traversal key escaped the base directory")
			}
		}
	}
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	base := t.TempDir()
	store := New(base)

	if _, err := store.Save(context.Background(), "exports/resume.pdf", "application/pdf", strings.NewReader("data")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var leftovers []string
	filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasPrefix(d.Name(), ".artifact-") {
			leftovers = append(leftovers, path)
		}
		return nil
	})
	if len(leftovers) != 0 {
		t.Fatalf("expected no temp files, found %v", leftovers)
	}
}
