package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyenthenguyen/docx"
)

func TestWriteDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	text := "**Jane Doe**\njane@example.com\n\nShipped **30%** faster releases & fixed <broken> builds.\n"

	if err := WriteDOCX(text, path); err != nil {
		t.Fatalf("WriteDOCX: %v", err)
	}

	content := readDocumentXML(t, path)
	if !strings.Contains(content, "<w:r><w:rPr><w:b/></w:rPr><w:t xml:space=\"preserve\">Jane Doe</w:t></w:r>") {
		t.Errorf("bold run for name missing:\n%s", content)
	}
	if !strings.Contains(content, "jane@example.com") {
		t.Errorf("plain paragraph missing:\n%s", content)
	}
	if strings.Contains(content, "**") {
		t.Errorf("bold markers leaked into document: %s", content)
	}
	if !strings.Contains(content, "&amp; fixed &lt;broken&gt; builds.") {
		t.Errorf("markup characters not escaped:\n%s", content)
	}
	// Blank input lines are dropped, not emitted as empty paragraphs.
	if strings.Contains(content, "<w:p></w:p>") {
		t.Errorf("empty paragraph emitted:\n%s", content)
	}
}

func TestWriteDOCXEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	if err := WriteDOCX("", path); err != nil {
		t.Fatalf("WriteDOCX on empty input: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("no file written: %v", err)
	}
}

// readDocumentXML reopens the written file to prove it is a valid package.
func readDocumentXML(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reopening written docx: %v", err)
	}
	defer reader.Close()
	return reader.Editable().GetContent()
}
