package sites

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobkit/jobscraper/internal/normalize"
	"github.com/jobkit/jobscraper/pkg/models"
)

var titleHintRe = regexp.MustCompile(`(?i)job title|position`)

// genericScraper is the fallback for unknown boards: best-effort title from
// common heading elements, description from the whole page text.
type genericScraper struct{}

func (s *genericScraper) Extract(doc *goquery.Document, url string) models.JobRecord {
	job := models.New(url)

	for _, sel := range []string{"h1", "title", "h2"} {
		if text := normalize.CleanText(doc.Find(sel).First().Text()); text != "" {
			job.Title = text
			break
		}
	}
	if job.Title == "" {
		doc.Find("h3, h4, p, span, div").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			text := normalize.CleanText(el.Text())
			if text != "" && len(text) < 200 && titleHintRe.MatchString(text) {
				job.Title = text
				return false
			}
			return true
		})
	}

	job.Description = normalize.CleanText(doc.Text())
	return job
}
