package wikisum_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fwojciec/wikisum"
	"github.com/fwojciec/wikisum/mock"
	"github.com/stretchr/testify/assert"
)

func TestCleanLines(t *testing.T) {
	t.Parallel()

	t.Run("trims lines and drops blanks", func(t *testing.T) {
		t.Parallel()

		got := wikisum.CleanLines("\n  Earth is the third planet.  \n\n\t\nIt has one moon.\n")

		assert.Equal(t, "Earth is the third planet.\nIt has one moon.", got)
	})

	t.Run("drops disambiguation and redirect notices", func(t *testing.T) {
		t.Parallel()

		text := strings.Join([]string{
			"For other uses, see Earth (disambiguation).",
			"\"Planet Earth\" redirects here.",
			"See also: Outline of Earth",
			"Earth is the third planet from the Sun.",
		}, "\n")

		assert.Equal(t, "Earth is the third planet from the Sun.", wikisum.CleanLines(text))
	})

	t.Run("drops navigational headings case-insensitively", func(t *testing.T) {
		t.Parallel()

		text := strings.Join([]string{
			"Contents",
			"references",
			"External links",
			"BIBLIOGRAPHY",
			"Further reading",
			"Referenced works are listed below.",
			"Earth formed 4.5 billion years ago.",
		}, "\n")

		assert.Equal(t, "Referenced works are listed below.\nEarth formed 4.5 billion years ago.", wikisum.CleanLines(text))
	})

	t.Run("drops flattened table-of-contents numbering", func(t *testing.T) {
		t.Parallel()

		text := strings.Join([]string{
			"1 History 2 Geography",
			"42",
			"3.1 Climate",
			"1990s were warm.",
			"Earth has seasons.",
		}, "\n")

		got := wikisum.CleanLines(text)

		tocRe := regexp.MustCompile(`^\d+(\s+\w+.*)?$`)
		for _, line := range strings.Split(got, "\n") {
			assert.False(t, tocRe.MatchString(line), "line %q should have been dropped", line)
		}
		assert.Equal(t, "3.1 Climate\n1990s were warm.\nEarth has seasons.", got)
	})

	t.Run("drops numbering separated by non-breaking spaces", func(t *testing.T) {
		t.Parallel()

		text := "1\u00a0History 2\u00a0Geography\nEarth has seasons."

		assert.Equal(t, "Earth has seasons.", wikisum.CleanLines(text))
	})

	t.Run("drops numbering in non-ASCII digits", func(t *testing.T) {
		t.Parallel()

		text := "\u0661 History\n\u0662\nEarth has seasons."

		assert.Equal(t, "Earth has seasons.", wikisum.CleanLines(text))
	})

	t.Run("keeps lines where a heading word runs into a non-ASCII letter", func(t *testing.T) {
		t.Parallel()

		text := "Referencesé are here\nReferences: see below\nContents"

		assert.Equal(t, "Referencesé are here", wikisum.CleanLines(text))
	})

	t.Run("returns empty string when nothing survives", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wikisum.CleanLines("References\n\n1 History\n  \n"))
	})
}

func TestCleanSentence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		keep bool
	}{
		{"trims whitespace", "  Earth is round. ", "Earth is round.", true},
		{"drops other uses notice", "For other uses, see Earth.", "", false},
		{"drops other uses notice in lowercase", "for other uses see below.", "", false},
		{"drops disambiguation mention", "See Mercury (Disambiguation) for more.", "", false},
		{"strips edit link", "History[edit | edit source] Earth formed early.", "History Earth formed early.", true},
		{"strips short edit link", "Geology[edit]", "Geology", true},
		{"drops sentence that is only an edit link", " [edit | edit source] ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, keep := wikisum.CleanSentence(tt.in)

			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripBoilerplate(t *testing.T) {
	t.Parallel()

	var selected []string
	removed := 0
	doc := &mock.HTMLDocument{
		SelectFn: func(sel wikisum.Selector) wikisum.Nodes {
			selected = append(selected, sel.String())
			count := 0
			if sel.Tag == "table" || sel.Class == "navbox" {
				count = 2
			}
			return &mock.Nodes{
				LenFn:    func() int { return count },
				RemoveFn: func() { removed += count },
			}
		},
	}

	n := wikisum.StripBoilerplate(doc)

	assert.Equal(t, 4, n)
	assert.Equal(t, 4, removed)
	assert.Len(t, selected, len(wikisum.BoilerplateSelectors))
	assert.Contains(t, selected, "div.navbox")
	assert.Contains(t, selected, "div#toc")
	assert.Contains(t, selected, "span.mw-editsection")
	assert.Contains(t, selected, "h6")
}

func TestSelector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sup", wikisum.Selector{Tag: "sup"}.String())
	assert.Equal(t, "div.reflist", wikisum.Selector{Tag: "div", Class: "reflist"}.String())
	assert.Equal(t, "div#toc", wikisum.Selector{Tag: "div", ID: "toc"}.String())
}
