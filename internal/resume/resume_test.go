package resume

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Jane Doe\nAccountant with 5 years of audit experience.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got != content {
		t.Fatalf("got %q, want %q", got, content)
	}
}

func TestFromFileUnknownExtensionTreatedAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	if err := os.WriteFile(path, []byte("# Jane"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile(path)
	if err != nil || got != "# Jane" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFromFileBadPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(path); err == nil {
		t.Fatal("expected an error for malformed PDF data")
	}
}
