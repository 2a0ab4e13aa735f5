// Package glossary explains the categories reported by the extractor.
package glossary

import "strings"

// Fallback is returned for categories without an entry.
const Fallback = "No explanation available for this category."

var explanations = map[string]string{
	"Income Tax": "Wage tax (Lohnsteuer) withheld by your employer and paid to the tax office on your behalf. " +
		"It is credited against your final income tax when you file a return.",
	"Solidarity Surcharge": "The Solidaritätszuschlag, a surcharge of up to 5.5% on the income tax. " +
		"Since 2021 most employees are below the exemption threshold and pay none.",
	"Church Tax": "Kirchensteuer, 8% or 9% of the income tax depending on the federal state, " +
		"withheld only for members of a tax-collecting religious community.",
	"Pension Insurance": "Your share of the statutory pension insurance (Rentenversicherung) contribution.",
	"Employer Pension Contribution": "The employer's share of the statutory pension insurance contribution. " +
		"It is not deducted from your pay but is reported for your tax return.",
	"Health Insurance": "Your share of the statutory health insurance (Krankenversicherung) contribution, " +
		"including the additional contribution of your health insurer.",
	"Nursing Care Insurance": "Your contribution to the social long-term care insurance (Pflegeversicherung). " +
		"Childless employees over 23 pay a surcharge.",
	"Unemployment Insurance": "Your share of the unemployment insurance (Arbeitslosenversicherung) contribution.",
	"Employer Health Insurance Subsidy": "Tax-free subsidies your employer paid towards your statutory or private health insurance.",
	"Employer Nursing Care Subsidy": "Tax-free subsidies your employer paid towards your long-term care insurance.",
	"Private Health Insurance": "Contributions to private health and compulsory long-term care insurance " +
		"that were taken into account when calculating wage tax.",
}

// Explain returns the explanation for an exact category name, or Fallback.
func Explain(category string) string {
	if text, ok := Lookup(category); ok {
		return text
	}
	return Fallback
}

// Lookup returns the explanation and whether one exists.
func Lookup(category string) (string, bool) {
	text, ok := explanations[category]
	return text, ok
}

// Explainable reports whether a category is shown in explanations.
// Gross figures are not explained.
func Explainable(category string) bool {
	return !strings.Contains(strings.ToLower(category), "gross")
}

// Missing returns the explainable categories that have no glossary entry.
func Missing(categories []string) []string {
	var out []string
	for _, category := range categories {
		if !Explainable(category) {
			continue
		}
		if _, ok := Lookup(category); !ok {
			out = append(out, category)
		}
	}
	return out
}
