package config

// DefaultUserAgents provides a list of common user agents
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
}

// DefaultSkillKeywords is the closed vocabulary the skill extractor scans for.
// Matches are case-insensitive substring matches against the description.
var DefaultSkillKeywords = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"sql", "mysql", "postgresql", "mongodb", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes",
	"machine learning", "ai", "data science", "tensorflow", "pytorch",
	"html", "css", "bootstrap", "git", "linux", "windows",
	"project management", "agile", "scrum", "communication",
	"leadership", "teamwork", "problem solving", "chartered accountant",
	"audit", "accounting", "finance", "taxation", "compliance",
	"financial reporting", "excel", "tally", "sap", "quickbooks",
}

// DefaultResponsibilityCues are the words a list item must contain before it
// counts as a responsibility bullet.
var DefaultResponsibilityCues = []string{
	"responsible", "manage", "develop", "work", "collaborate",
}

// DefaultSiteSelectors maps each known job board to its selector-candidate
// table. Adding a site is a config change, not a code change.
var DefaultSiteSelectors = map[string]SelectorSet{
	"linkedin": {
		Title:       []string{"h1.top-card-layout__title", "h1"},
		Company:     []string{"a.topcard__org-name-link", "span.topcard__flavor"},
		Description: []string{"div.show-more-less-html__markup"},
	},
	"naukri": {
		Title: []string{
			`h1[class*="jd-header-title"]`,
			".jd-header-title",
			"h1.job-title",
			".job-header h1",
			"h1",
		},
		Company: []string{
			".jd-header-comp-name",
			".company-name",
			`[class*="comp-name"]`,
			".jd-header .company",
			`a[title*="company"]`,
		},
		Experience: []string{
			".jd-header-exp",
			".experience",
			`[class*="exp"]`,
			".job-details .experience",
		},
		Location: []string{
			".jd-header-location",
			".location",
			`[class*="location"]`,
			".job-location",
		},
		Description: []string{
			".jd-desc",
			".job-description",
			".description",
			`[class*="job-desc"]`,
			".jd-desc-content",
		},
	},
}
