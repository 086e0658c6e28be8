package enrich

import "testing"

func TestExperience(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"range form", "5-7 years experience required", "5-7 years"},
		{"to form", "3 to 5 years of experience in audit", "3-5 years"},
		{"minimum form", "minimum 3 years", "3+ years"},
		{"at least form", "at least 2 years in a similar role", "2+ years"},
		{"plus form", "7+ years experience with distributed systems", "7+ years"},
		{"experience prefix", "Experience: 4 years in finance", "4+ years"},
		{"entry level keyword", "Looking for a fresher", "Entry Level"},
		{"graduate keyword", "Recent graduate welcome to apply", "Entry Level"},
		{"senior keyword", "Senior Architect role", "Senior Level (5+ years)"},
		{"principal keyword", "Principal engineer opening", "Senior Level (5+ years)"},
		{"nothing", "We build accounting software", "Not specified"},
		{"empty", "", "Not specified"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Experience(tc.in); got != tc.want {
				t.Fatalf("Experience(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Numeric patterns outrank level keywords even when both are present.
func TestExperienceNumericWinsOverKeywords(t *testing.T) {
	got := Experience("Senior role, minimum 8 years required")
	if got != "8+ years" {
		t.Fatalf("got %q, want %q", got, "8+ years")
	}
}
