package enrich

import (
	"regexp"
	"strings"
)

var (
	skillSectionRe = regexp.MustCompile(`(?:skills|requirements|qualifications)[:\s]*([^.]*)`)
	skillTokenRe   = regexp.MustCompile(`\b[A-Za-z][A-Za-z.+#]{2,}\b`)
)

// Skills scans normalized text for every vocabulary entry appearing as a
// case-insensitive substring, and additionally harvests alphabetic tokens
// from text windows following "skills", "requirements" or "qualifications"
// up to the next period. Additional skills are deduplicated in first-seen
// order and truncated to maxExtra.
func Skills(text string, vocabulary []string, maxExtra int) (found, additional []string) {
	lower := strings.ToLower(text)

	for _, skill := range vocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}

	seen := make(map[string]bool)
	for _, section := range skillSectionRe.FindAllStringSubmatch(lower, -1) {
		for _, word := range skillTokenRe.FindAllString(section[1], -1) {
			if seen[word] {
				continue
			}
			seen[word] = true
			additional = append(additional, word)
		}
	}
	if len(additional) > maxExtra {
		additional = additional[:maxExtra]
	}

	return found, additional
}

// MergeSkills appends additional skills to the vocabulary matches, skipping
// anything already present case-insensitively.
func MergeSkills(found, additional []string) []string {
	have := make(map[string]bool, len(found))
	for _, s := range found {
		have[strings.ToLower(s)] = true
	}
	merged := found
	for _, s := range additional {
		k := strings.ToLower(s)
		if have[k] {
			continue
		}
		have[k] = true
		merged = append(merged, s)
	}
	return merged
}
