package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	if err := os.WriteFile(path, []byte("  The cat sat.  \n\n  The dog ran.  \n"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	draft, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if draft.Title != "essay" {
		t.Fatalf("expected title from filename, got %q", draft.Title)
	}
	if draft.Text != "The cat sat.\nThe dog ran." {
		t.Fatalf("unexpected normalized text %q", draft.Text)
	}
}

func TestParseMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Draft\n\nSome    spaced   words.\n"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	draft, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if draft.Text != "# Draft\nSome spaced words." {
		t.Fatalf("unexpected normalized text %q", draft.Text)
	}
}

func TestExtractDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>My Essay</w:t></w:r></w:p><w:p><w:r><w:t>Hello world.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := extractDOCX(raw)
	if err != nil {
		t.Fatalf("extractDOCX failed: %v", err)
	}
	if got == "" {
		t.Fatal("expected extracted text")
	}
}

func TestParseFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.pptx")
	if err := os.WriteFile(path, []byte("whatever"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, err := ParseFile(path); err == nil {
		t.Fatal("expected unsupported file type error")
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
