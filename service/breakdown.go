package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/payslip-analyzer/dto"
)

// categories containing these words are not deductions
var nonDeductionMarkers = []string{"gross", "net", "taxable"}

// IsDeduction reports whether an item belongs in the deduction breakdown.
func IsDeduction(item dto.PayslipItem) bool {
	if item.Amount <= 0 {
		return false
	}
	category := strings.ToLower(item.Category)
	for _, marker := range nonDeductionMarkers {
		if strings.Contains(category, marker) {
			return false
		}
	}
	return true
}

// BuildBreakdown returns the deductions among items with their share of the total,
// in percent rounded to one decimal.
func BuildBreakdown(items []dto.PayslipItem) dto.DeductionBreakdown {
	total := decimal.Zero
	deductions := make([]dto.PayslipItem, 0, len(items))
	amounts := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		if !IsDeduction(item) {
			continue
		}
		amount := toDecimal(item.Amount)
		deductions = append(deductions, item)
		amounts = append(amounts, amount)
		total = total.Add(amount)
	}

	breakdown := dto.DeductionBreakdown{
		Slices: make([]dto.DeductionSlice, 0, len(deductions)),
		Total:  total.InexactFloat64(),
	}
	for i, item := range deductions {
		share := amounts[i].Mul(hundred).Div(total).Round(1)
		breakdown.Slices = append(breakdown.Slices, dto.DeductionSlice{
			Category: item.Category,
			Amount:   item.Amount,
			Share:    share.InexactFloat64(),
		})
	}

	return breakdown
}

var hundred = decimal.NewFromInt(100)

// toDecimal reads a euro amount back to cent precision.
func toDecimal(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}
