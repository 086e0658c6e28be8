package enrich

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobkit/jobscraper/internal/normalize"
)

// numberedRe matches sentences of the form "1. Do the thing." or "2) Own it."
var numberedRe = regexp.MustCompile(`\d+[.)]\s*[A-Z][^.]*\.`)

// Responsibilities collects responsibility bullets from two sources: list
// items in the parsed markup whose text is long enough and contains a cue
// word, and numbered sentences in the normalized full text. The combined
// result is truncated to max entries, list items first.
func Responsibilities(doc *goquery.Document, text string, cues []string, max int) []string {
	var out []string

	if doc != nil {
		doc.Find("ul li, ol li").Each(func(_ int, li *goquery.Selection) {
			item := normalize.CleanText(li.Text())
			if len(item) > 10 && containsAny(strings.ToLower(item), cues) {
				out = append(out, item)
			}
		})
	}

	for _, m := range numberedRe.FindAllString(text, -1) {
		if resp := normalize.CleanText(m); len(resp) > 15 {
			out = append(out, resp)
		}
	}

	if len(out) > max {
		out = out[:max]
	}
	return out
}
