package models

// JobRecord holds the structured result of scraping one job posting. A record
// is populated by exactly one site scraper, passed through enrichment once,
// and only read after that.
type JobRecord struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	JobType            string   `json:"job_type,omitempty"`
	ExperienceRequired string   `json:"experience_required"`
	Description        string   `json:"description"`
	Responsibilities   []string `json:"responsibilities"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills,omitempty"`
	Salary             string   `json:"salary,omitempty"`
	URL                string   `json:"url"`
}

// New returns an empty record for the given posting URL.
func New(url string) JobRecord {
	return JobRecord{URL: url}
}
