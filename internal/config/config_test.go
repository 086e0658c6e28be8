package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateDefault(t *testing.T) {
	cfg := CreateDefault()

	if cfg.Scraper.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.Scraper.Timeout)
	}
	if cfg.Scraper.Delay != time.Second {
		t.Errorf("delay = %v", cfg.Scraper.Delay)
	}
	if cfg.Browser.WaitTimeout != 15*time.Second || cfg.Browser.SettleDelay != 3*time.Second {
		t.Errorf("browser waits = %v / %v", cfg.Browser.WaitTimeout, cfg.Browser.SettleDelay)
	}
	if len(cfg.Scraper.UserAgents) == 0 {
		t.Error("user agents must default")
	}
	if len(cfg.Extraction.SkillKeywords) < 30 {
		t.Errorf("skill vocabulary too small: %d", len(cfg.Extraction.SkillKeywords))
	}
	if cfg.Extraction.MaxResponsibilities != 8 || cfg.Extraction.MaxAdditionalSkills != 10 {
		t.Errorf("caps = %d / %d", cfg.Extraction.MaxResponsibilities, cfg.Extraction.MaxAdditionalSkills)
	}
	if len(cfg.Selectors("naukri").Title) == 0 {
		t.Error("naukri selector table must default")
	}
	if cfg.IO.CSVFile != "job_data.csv" || cfg.IO.JSONFile != "job_data.json" {
		t.Errorf("output files = %q / %q", cfg.IO.CSVFile, cfg.IO.JSONFile)
	}
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	yaml := `
scraper:
  delay: 2000000000
io:
  csv_file: out.csv
sites:
  indeed:
    title:
      - "h1.jobsearch-JobInfoHeader-title"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scraper.Delay != 2*time.Second {
		t.Errorf("delay = %v", cfg.Scraper.Delay)
	}
	if cfg.IO.CSVFile != "out.csv" {
		t.Errorf("csv file = %q", cfg.IO.CSVFile)
	}
	if got := cfg.Selectors("indeed").Title; len(got) != 1 || got[0] != "h1.jobsearch-JobInfoHeader-title" {
		t.Errorf("indeed selectors = %v", got)
	}
	// File omissions backfill from defaults.
	if len(cfg.Selectors("naukri").Company) == 0 {
		t.Error("naukri defaults must survive a partial config")
	}
	if len(cfg.Scraper.UserAgents) == 0 {
		t.Error("user agents must backfill")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
