package sites

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jobkit/jobscraper/internal/config"
	"github.com/jobkit/jobscraper/internal/normalize"
	"github.com/jobkit/jobscraper/pkg/models"
)

// Scraper extracts a partial JobRecord from parsed markup. Per-field selector
// misses are silent; a missing field keeps its zero value.
type Scraper interface {
	Extract(doc *goquery.Document, url string) models.JobRecord
}

// For returns the extraction strategy for a site. Glassdoor, Monster and
// Indeed are detected but have no dedicated strategy and fall through to the
// generic one. (Indeed's selectors in the original tool were dead code.)
func For(site Site, cfg *config.AppConfig) Scraper {
	switch site {
	case LinkedIn:
		return &selectorScraper{sel: cfg.Selectors(string(LinkedIn))}
	case Naukri:
		return &naukriScraper{selectorScraper{sel: cfg.Selectors(string(Naukri))}}
	default:
		return &genericScraper{}
	}
}

// selectFirst returns the cleaned text of the first selector candidate that
// matches a non-empty element.
func selectFirst(doc *goquery.Document, candidates []string) string {
	for _, sel := range candidates {
		if text := normalize.CleanText(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// selectorScraper fills each field from an ordered selector-candidate table.
// It covers any board whose markup is reachable through static selectors.
type selectorScraper struct {
	sel config.SelectorSet
}

func (s *selectorScraper) Extract(doc *goquery.Document, url string) models.JobRecord {
	job := models.New(url)
	job.Title = selectFirst(doc, s.sel.Title)
	job.Company = selectFirst(doc, s.sel.Company)
	job.Location = selectFirst(doc, s.sel.Location)
	job.Description = selectFirst(doc, s.sel.Description)
	return job
}
