package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the complete application configuration
type AppConfig struct {
	Scraper    ScraperConfig          `yaml:"scraper"`
	IO         IOConfig               `yaml:"io"`
	Extraction ExtractionConfig       `yaml:"extraction"`
	Proxies    ProxyConfig            `yaml:"proxies"`
	Browser    BrowserConfig          `yaml:"browser"`
	Sites      map[string]SelectorSet `yaml:"sites"`
}

// ScraperConfig holds the scraper configuration
type ScraperConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	Delay      time.Duration `yaml:"delay"`
	UserAgents []string      `yaml:"user_agents,omitempty"`
}

// IOConfig holds the input/output configuration
type IOConfig struct {
	InputFile string `yaml:"input_file"`
	CSVFile   string `yaml:"csv_file"`
	JSONFile  string `yaml:"json_file"`
}

// ExtractionConfig holds the keyword and cue lists the enrichment pass
// matches against. Swapping these out changes what gets extracted without
// touching extraction logic.
type ExtractionConfig struct {
	SkillKeywords       []string `yaml:"skill_keywords,omitempty"`
	ResponsibilityCues  []string `yaml:"responsibility_cues,omitempty"`
	MaxResponsibilities int      `yaml:"max_responsibilities"`
	MaxAdditionalSkills int      `yaml:"max_additional_skills"`
}

// ProxyConfig holds the proxy configuration
type ProxyConfig struct {
	Enabled bool     `yaml:"enabled"`
	Rotate  bool     `yaml:"rotate"`
	List    []string `yaml:"list"`
}

// BrowserConfig holds the headless browser configuration for
// JavaScript-rendered pages
type BrowserConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Headless    bool          `yaml:"headless"`
	UserAgent   string        `yaml:"user_agent"`
	WaitTimeout time.Duration `yaml:"wait_timeout"`
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// SelectorSet is an ordered list of CSS selector candidates per field for one
// job site. The first selector yielding non-empty text wins.
type SelectorSet struct {
	Title       []string `yaml:"title,omitempty"`
	Company     []string `yaml:"company,omitempty"`
	Location    []string `yaml:"location,omitempty"`
	Experience  []string `yaml:"experience,omitempty"`
	Description []string `yaml:"description,omitempty"`
}

// Load loads the configuration from a YAML file, filling anything the file
// leaves out from the defaults.
func Load(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := CreateDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	config.fillDefaults()

	return config, nil
}

// CreateDefault creates a configuration with all defaults applied.
func CreateDefault() *AppConfig {
	cfg := &AppConfig{
		Scraper: ScraperConfig{
			Timeout: 15 * time.Second,
			Delay:   1 * time.Second,
		},
		IO: IOConfig{
			CSVFile:  "job_data.csv",
			JSONFile: "job_data.json",
		},
		Extraction: ExtractionConfig{
			MaxResponsibilities: 8,
			MaxAdditionalSkills: 10,
		},
		Proxies: ProxyConfig{
			Rotate: true,
		},
		Browser: BrowserConfig{
			Headless:    true,
			WaitTimeout: 15 * time.Second,
			SettleDelay: 3 * time.Second,
		},
	}
	cfg.fillDefaults()
	return cfg
}

// fillDefaults backfills list-valued settings that must never be empty.
func (c *AppConfig) fillDefaults() {
	if len(c.Scraper.UserAgents) == 0 {
		c.Scraper.UserAgents = DefaultUserAgents
	}
	if c.Browser.UserAgent == "" {
		c.Browser.UserAgent = DefaultUserAgents[0]
	}
	if len(c.Extraction.SkillKeywords) == 0 {
		c.Extraction.SkillKeywords = DefaultSkillKeywords
	}
	if len(c.Extraction.ResponsibilityCues) == 0 {
		c.Extraction.ResponsibilityCues = DefaultResponsibilityCues
	}
	if c.Extraction.MaxResponsibilities <= 0 {
		c.Extraction.MaxResponsibilities = 8
	}
	if c.Extraction.MaxAdditionalSkills <= 0 {
		c.Extraction.MaxAdditionalSkills = 10
	}
	if c.Sites == nil {
		c.Sites = map[string]SelectorSet{}
	}
	for name, sel := range DefaultSiteSelectors {
		if _, ok := c.Sites[name]; !ok {
			c.Sites[name] = sel
		}
	}
}

// Selectors returns the selector table for a site, empty if none configured.
func (c *AppConfig) Selectors(site string) SelectorSet {
	return c.Sites[site]
}
