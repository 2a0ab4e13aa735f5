package lohnsteuer

import (
	"regexp"
	"strings"
	"unicode"
)

// LabelPattern builds a case-insensitive pattern for a printed caption. Each whitespace run
// in the caption matches one or more whitespace characters; everything else is literal.
func LabelPattern(label string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)`)

	inSpace := false
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			b.WriteString(regexp.QuoteMeta(literal.String()))
			literal.Reset()
		}
	}

	for _, r := range strings.TrimSpace(label) {
		if unicode.IsSpace(r) {
			if !inSpace {
				flush()
				b.WriteString(`\s+`)
				inSpace = true
			}
			continue
		}
		inSpace = false
		literal.WriteRune(r)
	}
	flush()

	return regexp.MustCompile(b.String())
}

// Locate returns the byte offset just past the first occurrence of label in text.
func Locate(text, label string) (int, bool) {
	return locateWith(LabelPattern(label), text)
}

func locateWith(re *regexp.Regexp, text string) (int, bool) {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}
