package lohnsteuer

import (
	"regexp"
	"unicode/utf8"
)

// DefaultWindowWidth is how many characters after a caption are searched for its value.
// It was chosen empirically: wide enough to skip the column header text printed between a
// caption and its value, narrow enough not to reach the next caption's figures. Reflowed
// documents can push a value past it, which shows up as a missing field.
const DefaultWindowWidth = 60

// RawAmountMatch holds the euro and cent columns as printed. Offset is the byte offset of
// the match in the full text.
type RawAmountMatch struct {
	IntegerPart    string
	FractionalPart string
	Offset         int
}

func (m RawAmountMatch) String() string {
	return m.IntegerPart + " " + m.FractionalPart
}

// valuePairRe matches "<euros> <cents>" where euros is a digit run with optional "."
// grouping or a dash run, and cents is one or two digits ending at a word boundary or
// exactly "--" not followed by another dash.
var valuePairRe = regexp.MustCompile(`(-{3,}|\d+(?:\.\d{3})*)\s+(?:(\d{1,2})\b|(--)(?:[^-]|$))`)

// ExtractAmount searches width characters of text starting at afterOffset for the first
// value pair.
func ExtractAmount(text string, afterOffset, width int) (RawAmountMatch, bool) {
	if afterOffset < 0 || afterOffset > len(text) || width <= 0 {
		return RawAmountMatch{}, false
	}

	end := windowEnd(text, afterOffset, width)
	window := text[afterOffset:end]

	m := valuePairRe.FindStringSubmatchIndex(window)
	if m == nil {
		return RawAmountMatch{}, false
	}

	centsStart, centsEnd, dashCents := m[4], m[5], false
	if centsStart < 0 {
		centsStart, centsEnd, dashCents = m[6], m[7], true
	}
	// cent column cut off by the window edge
	if centsEnd == len(window) && end < len(text) && continuesToken(text[end], dashCents) {
		return RawAmountMatch{}, false
	}

	return RawAmountMatch{
		IntegerPart:    window[m[2]:m[3]],
		FractionalPart: window[centsStart:centsEnd],
		Offset:         afterOffset + m[0],
	}, true
}

// continuesToken reports whether next would have extended the cent column past the
// window edge.
func continuesToken(next byte, dashCents bool) bool {
	if dashCents {
		return next == '-'
	}
	return next == '_' || (next >= '0' && next <= '9') || (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z')
}

// windowEnd returns the byte offset width runes after start, clamped to len(text).
func windowEnd(text string, start, width int) int {
	pos := start
	for i := 0; i < width && pos < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}
