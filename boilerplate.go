package wikisum

import (
	"regexp"
	"strings"
)

var (
	// Word boundaries are Unicode-aware: "Referencesé" is not a heading.
	headingLineRe = regexp.MustCompile(`(?i)^(Contents|See also|References|External links|Bibliography|Further reading)([^\p{L}\p{N}_]|$)`)

	// Flattened table-of-contents numbering, e.g. "1 History 2 Geography",
	// in any script's digits and separated by any space including NBSP.
	tocLineRe = regexp.MustCompile(`^\p{Nd}+([\s\p{Zs}]+[\p{L}\p{N}_]+.*)?$`)
)

// Edit-link artifacts that survive in sentence text.
var editMarkers = []string{"[edit | edit source]", "[edit]"}

// StripBoilerplate removes every node matching BoilerplateSelectors from doc.
// It returns the number of nodes removed.
func StripBoilerplate(doc HTMLDocument) int {
	var n int
	for _, sel := range BoilerplateSelectors {
		nodes := doc.Select(sel)
		n += nodes.Len()
		nodes.Remove()
	}
	return n
}

// CleanLines splits text into lines, trims them, drops blank lines and
// navigational leftovers, and joins the survivors with newlines.
func CleanLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if keepLine(line) {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func keepLine(line string) bool {
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, "For other uses"),
		strings.Contains(line, "redirects here"),
		strings.HasPrefix(line, "See also"):
		return false
	case headingLineRe.MatchString(line):
		return false
	case tocLineRe.MatchString(line):
		return false
	}
	return true
}

// CleanSentence applies the summary post-filter to a selected sentence.
// It reports false if the sentence should be dropped from the summary.
func CleanSentence(s string) (string, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "for other uses") || strings.Contains(lower, "disambiguation") {
		return "", false
	}
	for _, marker := range editMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
