package normalize

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace runs", "a  b\t\tc\n\nd", "a b c d"},
		{"leading and trailing", "   hello world   ", "hello world"},
		{"nbsp entity", "salary&nbsp;range", "salary range"},
		{"amp entity", "audit &amp; assurance", "audit & assurance"},
		{"angle entities", "&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
		{"mixed", "  Senior&nbsp;&nbsp;Engineer \n role ", "Senior Engineer role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanText(tc.in); got != tc.want {
				t.Fatalf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanTextProperties(t *testing.T) {
	inputs := []string{
		"plain text",
		"lots   of\t spaces\n\n and &nbsp; entities &amp; more",
		"&lt;&gt;&lt;&gt;",
		"   ",
	}
	for _, in := range inputs {
		out := CleanText(in)
		if strings.Contains(out, "  ") {
			t.Errorf("CleanText(%q) = %q contains a whitespace run", in, out)
		}
		for _, ent := range []string{"&nbsp;", "&amp;", "&lt;", "&gt;"} {
			if strings.Contains(out, ent) {
				t.Errorf("CleanText(%q) = %q still contains %s", in, out, ent)
			}
		}
	}
}
