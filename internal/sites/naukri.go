package sites

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobkit/jobscraper/internal/normalize"
	"github.com/jobkit/jobscraper/pkg/models"
)

// naukriScraper extends the selector-table strategy with Naukri quirks: the
// experience header only counts when it actually talks about experience, and
// a page with no matching description selector falls back to the whole page
// text so enrichment still has something to chew on.
type naukriScraper struct {
	selectorScraper
}

func (s *naukriScraper) Extract(doc *goquery.Document, url string) models.JobRecord {
	job := s.selectorScraper.Extract(doc, url)

	for _, sel := range s.sel.Experience {
		text := normalize.CleanText(doc.Find(sel).First().Text())
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		if strings.Contains(lower, "year") || strings.Contains(lower, "exp") {
			job.ExperienceRequired = text
			break
		}
	}

	if job.Description == "" {
		job.Description = normalize.CleanText(doc.Text())
	}

	return job
}
