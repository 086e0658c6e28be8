// Package sites classifies job-posting URLs by job board and provides the
// selector-table-driven extraction strategy for each board.
package sites

import (
	"net/url"
	"strings"
)

// Site identifies a known job board, or Generic for everything else.
type Site string

const (
	LinkedIn  Site = "linkedin"
	Indeed    Site = "indeed"
	Glassdoor Site = "glassdoor"
	Naukri    Site = "naukri"
	Monster   Site = "monster"
	Generic   Site = "generic"
)

var knownDomains = []struct {
	substr string
	site   Site
}{
	{"linkedin.com", LinkedIn},
	{"indeed.com", Indeed},
	{"glassdoor.com", Glassdoor},
	{"naukri.com", Naukri},
	{"monster.com", Monster},
}

// Detect classifies a URL by hostname substring. Pure, no network access;
// unparseable URLs and unknown hosts classify as Generic.
func Detect(rawURL string) Site {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Generic
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range knownDomains {
		if strings.Contains(host, d.substr) {
			return d.site
		}
	}
	return Generic
}
