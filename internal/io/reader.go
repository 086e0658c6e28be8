package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jobkit/jobscraper/internal/config"
)

// URLReader reads job-posting URLs from various sources
type URLReader struct {
	Config *config.IOConfig
}

// NewURLReader creates a new URL reader
func NewURLReader(cfg *config.IOConfig) *URLReader {
	return &URLReader{Config: cfg}
}

// ReadFromFile reads URLs from a file, one URL per line, skipping blanks and
// lines starting with #.
func (r *URLReader) ReadFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	urls, err := readLines(file, false)
	if err != nil {
		return nil, err
	}
	return urls, nil
}

// ReadFromPrompt collects URLs interactively, one per line; a blank line
// terminates input.
func (r *URLReader) ReadFromPrompt(in io.Reader, out io.Writer) ([]string, error) {
	fmt.Fprintln(out, "Enter job URLs, one per line (blank line to finish):")
	return readLines(in, true)
}

// GetURLs returns URLs from the configured input file, or prompts on stdin
// when no file is configured.
func (r *URLReader) GetURLs() ([]string, error) {
	if r.Config.InputFile != "" {
		return r.ReadFromFile(r.Config.InputFile)
	}
	return r.ReadFromPrompt(os.Stdin, os.Stdout)
}

func readLines(in io.Reader, stopAtBlank bool) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url == "" {
			if stopAtBlank {
				break
			}
			continue
		}
		if strings.HasPrefix(url, "#") {
			continue
		}
		urls = append(urls, url)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
