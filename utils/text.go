package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultPageBreakMarker separates pages in flattened text.
const DefaultPageBreakMarker = "[PAGE_BREAK]"

// FlattenPages joins page texts with a page-break marker, collapses every whitespace run
// to a single space and trims the result. Text is NFC-normalised so that umlauts stored
// as base letter plus combining mark compare equal to their precomposed form.
func FlattenPages(pages []string, marker string) string {
	if marker == "" {
		marker = DefaultPageBreakMarker
	}

	var b strings.Builder
	for i, page := range pages {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(marker)
			b.WriteString(" ")
		}
		b.WriteString(page)
	}

	return NormalizeText(b.String())
}

// NormalizeText collapses whitespace and applies NFC normalisation.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
