package dto

// PayslipItem is one extracted line of the certificate.
// Amount is in euros, never negative.
type PayslipItem struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
}

// FieldTrace records what happened to one catalogue label during extraction.
type FieldTrace struct {
	Label    string `json:"label" yaml:"label"`
	Category string `json:"category" yaml:"category"`
	Status   string `json:"status" yaml:"status"`
	Raw      string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// ExplainedItem is an extracted item with its glossary text.
type ExplainedItem struct {
	Category    string `json:"category" yaml:"category"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// DeductionSlice is one slice of the deduction breakdown.
type DeductionSlice struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Share    float64 `json:"share" yaml:"share"` // percent of total deductions
}

// DeductionBreakdown is the chart-ready view of the deductions.
type DeductionBreakdown struct {
	Slices []DeductionSlice `json:"slices" yaml:"slices"`
	Total  float64          `json:"total" yaml:"total"`
}
