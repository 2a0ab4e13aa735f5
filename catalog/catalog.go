// Package catalog holds the fixed list of printed Lohnsteuerbescheinigung captions
// and the category each caption reports into.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GrossCategory is the category of the gross wage line.
const GrossCategory = "Gross Salary"

//go:embed default.yaml
var defaultCatalog []byte

// LabelEntry maps one printed caption to a category.
// RetainZero keeps the entry in the output even when its amount is zero.
type LabelEntry struct {
	Label      string `yaml:"label"`
	Category   string `yaml:"category"`
	RetainZero bool   `yaml:"retain_zero"`
}

type catalogFile struct {
	Entries []LabelEntry `yaml:"entries"`
}

// Catalog is an ordered, read-only list of label entries.
type Catalog struct {
	entries []LabelEntry
}

var (
	ErrEmptyCatalog   = errors.New("catalog has no entries")
	ErrDuplicateLabel = errors.New("duplicate label in catalog")
)

// Default returns the built-in catalogue.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		// embedded data is fixed at build time
		panic(fmt.Sprintf("invalid embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalogue from a YAML file. An empty path returns the built-in catalogue.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalogue document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(file.Entries)
}

// New validates entries and builds a catalogue that keeps their order.
func New(entries []LabelEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(entries))
	out := make([]LabelEntry, 0, len(entries))

	for i, e := range entries {
		label := strings.Join(strings.Fields(e.Label), " ")
		category := strings.TrimSpace(e.Category)
		if label == "" || category == "" {
			return nil, fmt.Errorf("catalog entry %d: label and category are required", i+1)
		}

		key := strings.ToLower(label)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		seen[key] = true

		out = append(out, LabelEntry{
			Label:      label,
			Category:   category,
			RetainZero: e.RetainZero,
		})
	}

	return &Catalog{entries: out}, nil
}

// Entries returns a copy of the entries in catalogue order.
func (c *Catalog) Entries() []LabelEntry {
	out := make([]LabelEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}
