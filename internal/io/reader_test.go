package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jobkit/jobscraper/internal/config"
)

func TestReadFromFileSkipsBlanksAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://a.example/job/1\n\n# comment\nhttps://b.example/job/2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewURLReader(&config.IOConfig{InputFile: path})
	urls, err := r.GetURLs()
	if err != nil {
		t.Fatalf("GetURLs: %v", err)
	}
	want := []string{"https://a.example/job/1", "https://b.example/job/2"}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("urls = %v, want %v", urls, want)
	}
}

func TestReadFromPromptStopsAtBlankLine(t *testing.T) {
	in := strings.NewReader("https://a.example/job/1\nhttps://b.example/job/2\n\nhttps://ignored.example\n")
	var out bytes.Buffer

	r := NewURLReader(&config.IOConfig{})
	urls, err := r.ReadFromPrompt(in, &out)
	if err != nil {
		t.Fatalf("ReadFromPrompt: %v", err)
	}
	want := []string{"https://a.example/job/1", "https://b.example/job/2"}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("urls = %v, want %v", urls, want)
	}
	if !strings.Contains(out.String(), "one per line") {
		t.Fatalf("prompt text missing: %q", out.String())
	}
}
