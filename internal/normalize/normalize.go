// Package normalize cleans raw text pulled out of HTML before any field
// extraction runs against it.
package normalize

import "strings"

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// CleanText collapses runs of whitespace to single spaces, trims the ends and
// decodes the handful of HTML entities that survive text extraction. It never
// fails; empty input yields an empty string.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = entityReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
