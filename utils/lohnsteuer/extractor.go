// Package lohnsteuer lifts the printed line items of a German wage-tax certificate
// (Lohnsteuerbescheinigung) out of its flattened text layer.
//
// The text is searched once per catalogue caption. For every caption found, the first
// "<euros> <cents>" pair within a short window after it becomes the value of the
// caption's category. Dash placeholders, unparseable values and zero amounts of
// categories that do not retain zero are skipped. Amounts of captions that share a
// category are summed.
package lohnsteuer

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/payslip-analyzer/catalog"
	"github.com/Aashish23092/payslip-analyzer/dto"
)

// Field statuses reported in traces.
const (
	StatusFound          = "found"
	StatusNotFound       = "not_found"
	StatusNoAmount       = "no_amount"
	StatusPlaceholder    = "placeholder"
	StatusUnparseable    = "unparseable"
	StatusZeroSuppressed = "zero_suppressed"
)

type compiledEntry struct {
	entry   catalog.LabelEntry
	pattern *regexp.Regexp
}

// Extractor runs a catalogue against flattened certificate text. It is safe for
// concurrent use; every call owns its own result table.
type Extractor struct {
	entries     []compiledEntry
	windowWidth int
}

// NewExtractor compiles the caption patterns of c. A windowWidth <= 0 selects
// DefaultWindowWidth.
func NewExtractor(c *catalog.Catalog, windowWidth int) *Extractor {
	if windowWidth <= 0 {
		windowWidth = DefaultWindowWidth
	}

	entries := c.Entries()
	compiled := make([]compiledEntry, 0, len(entries))
	for _, e := range entries {
		compiled = append(compiled, compiledEntry{
			entry:   e,
			pattern: LabelPattern(e.Label),
		})
	}

	return &Extractor{
		entries:     compiled,
		windowWidth: windowWidth,
	}
}

// WindowWidth returns the search window in characters.
func (x *Extractor) WindowWidth() int {
	return x.windowWidth
}

// Extract returns the items found in text in catalogue order.
func (x *Extractor) Extract(text string) []dto.PayslipItem {
	items, _ := x.ExtractWithTrace(text)
	return items
}

// ExtractWithTrace is Extract plus one trace entry per catalogue caption.
func (x *Extractor) ExtractWithTrace(text string) ([]dto.PayslipItem, []dto.FieldTrace) {
	table := newResultTable()
	traces := make([]dto.FieldTrace, 0, len(x.entries))

	for _, ce := range x.entries {
		status, raw := x.extractEntry(text, ce, table)
		traces = append(traces, dto.FieldTrace{
			Label:    ce.entry.Label,
			Category: ce.entry.Category,
			Status:   status,
			Raw:      raw,
		})
	}

	return table.Items(), traces
}

func (x *Extractor) extractEntry(text string, ce compiledEntry, table *resultTable) (string, string) {
	after, ok := locateWith(ce.pattern, text)
	if !ok {
		return StatusNotFound, ""
	}

	match, ok := ExtractAmount(text, after, x.windowWidth)
	if !ok {
		return StatusNoAmount, ""
	}

	amount, kind := NormalizeAmount(match.IntegerPart, match.FractionalPart)
	switch kind {
	case AmountPlaceholder:
		return StatusPlaceholder, match.String()
	case AmountInvalid:
		return StatusUnparseable, match.String()
	}

	if amount.IsZero() && !ce.entry.RetainZero {
		return StatusZeroSuppressed, match.String()
	}

	table.Add(ce.entry.Category, amount)
	return StatusFound, match.String()
}

// resultTable sums amounts per category and remembers first-insertion order.
type resultTable struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newResultTable() *resultTable {
	return &resultTable{totals: make(map[string]decimal.Decimal)}
}

func (t *resultTable) Add(category string, amount decimal.Decimal) {
	total, ok := t.totals[category]
	if !ok {
		t.order = append(t.order, category)
		total = decimal.Zero
	}
	t.totals[category] = total.Add(amount)
}

func (t *resultTable) Items() []dto.PayslipItem {
	items := make([]dto.PayslipItem, 0, len(t.order))
	for _, category := range t.order {
		items = append(items, dto.PayslipItem{
			Category: category,
			Amount:   t.totals[category].InexactFloat64(),
		})
	}
	return items
}
