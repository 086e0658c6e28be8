package io

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"

	"github.com/jobkit/jobscraper/internal/config"
	"github.com/jobkit/jobscraper/pkg/models"
)

// descriptionLimit caps the description column in CSV exports; JSON keeps
// the full text.
const descriptionLimit = 500

var csvHeader = []string{
	"Title", "Company", "Location", "Experience Required",
	"Required Skills", "Responsibilities", "Description", "URL",
}

// ResultWriter serializes scraped records to flat files
type ResultWriter struct {
	Config *config.IOConfig
}

// NewResultWriter creates a new result writer
func NewResultWriter(cfg *config.IOConfig) *ResultWriter {
	return &ResultWriter{Config: cfg}
}

// WriteCSV exports records to a CSV file. Skills are joined with ", ",
// responsibilities with " | ", the description truncated with an ellipsis.
func (w *ResultWriter) WriteCSV(jobs []models.JobRecord, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, job := range jobs {
		row := []string{
			job.Title,
			job.Company,
			job.Location,
			job.ExperienceRequired,
			strings.Join(job.RequiredSkills, ", "),
			strings.Join(job.Responsibilities, " | "),
			truncate(job.Description, descriptionLimit),
			job.URL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON exports records to a human-indented UTF-8 JSON array with the
// full description. Serialization is pure formatting; re-parsing the file
// yields the same records.
func (w *ResultWriter) WriteJSON(jobs []models.JobRecord, filename string) error {
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Save writes both configured output files.
func (w *ResultWriter) Save(jobs []models.JobRecord) error {
	if err := w.WriteCSV(jobs, w.Config.CSVFile); err != nil {
		return err
	}
	return w.WriteJSON(jobs, w.Config.JSONFile)
}

// truncate caps s at limit characters, not bytes, so multi-byte text is
// never cut mid-rune.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
