// Package enrich applies the text-pattern heuristics that run uniformly over
// every scraped posting regardless of source site: experience duration, skill
// keywords and responsibility bullets.
package enrich

import (
	"fmt"
	"regexp"
	"strings"
)

// experiencePatterns are tried in priority order against the lower-cased
// text. The first pattern with a match wins, and within a pattern the first
// match in the text is used, not the most specific one.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[+\-\s]*(?:to|-)?\s*(\d+)?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience[:\s]*(\d+)[+\-\s]*(?:to|-)?\s*(\d+)?\s*years?`),
	regexp.MustCompile(`(\d+)[+\-]\s*years?\s*experience`),
	regexp.MustCompile(`minimum\s*(\d+)\s*years?`),
	regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
}

var entryLevelTerms = []string{"entry level", "fresher", "graduate", "junior"}
var seniorLevelTerms = []string{"senior", "lead", "principal", "architect"}

// Experience extracts a years-of-experience requirement from normalized text.
// Numeric range and single-bound forms take priority; level keywords are the
// fallback. Returns "Not specified" when nothing matches.
func Experience(text string) string {
	text = strings.ToLower(text)

	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) >= 3 && m[2] != "" {
			return fmt.Sprintf("%s-%s years", m[1], m[2])
		}
		if m[1] != "" {
			return fmt.Sprintf("%s+ years", m[1])
		}
	}

	if containsAny(text, entryLevelTerms) {
		return "Entry Level"
	}
	if containsAny(text, seniorLevelTerms) {
		return "Senior Level (5+ years)"
	}

	return "Not specified"
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
