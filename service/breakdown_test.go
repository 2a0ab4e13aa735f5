package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/payslip-analyzer/dto"
)

func TestBuildBreakdown(t *testing.T) {
	items := []dto.PayslipItem{
		{Category: "Gross Salary", Amount: 5000},
		{Category: "Income Tax", Amount: 750},
		{Category: "Church Tax", Amount: 0},
		{Category: "Health Insurance", Amount: 250},
		{Category: "Net Pay", Amount: 4000},
		{Category: "Taxable Income", Amount: 4800},
	}

	b := BuildBreakdown(items)

	assert.Equal(t, 1000.0, b.Total)
	assert.Equal(t, []dto.DeductionSlice{
		{Category: "Income Tax", Amount: 750, Share: 75},
		{Category: "Health Insurance", Amount: 250, Share: 25},
	}, b.Slices)
}

func TestBuildBreakdownRoundsShare(t *testing.T) {
	b := BuildBreakdown([]dto.PayslipItem{
		{Category: "A", Amount: 1},
		{Category: "B", Amount: 2},
	})

	assert.Equal(t, 3.0, b.Total)
	assert.Equal(t, 33.3, b.Slices[0].Share)
	assert.Equal(t, 66.7, b.Slices[1].Share)
}

func TestBuildBreakdownSumsCentsExactly(t *testing.T) {
	b := BuildBreakdown([]dto.PayslipItem{
		{Category: "Health Insurance", Amount: 0.1},
		{Category: "Nursing Care Insurance", Amount: 0.2},
	})

	assert.Equal(t, 0.3, b.Total)
	assert.Equal(t, 33.3, b.Slices[0].Share)
	assert.Equal(t, 66.7, b.Slices[1].Share)
}

func TestBuildBreakdownEmpty(t *testing.T) {
	b := BuildBreakdown([]dto.PayslipItem{{Category: "Gross Salary", Amount: 100}})

	assert.Equal(t, 0.0, b.Total)
	assert.NotNil(t, b.Slices)
	assert.Empty(t, b.Slices)
}

func TestIsDeduction(t *testing.T) {
	assert.True(t, IsDeduction(dto.PayslipItem{Category: "Unemployment Insurance", Amount: 1}))
	assert.False(t, IsDeduction(dto.PayslipItem{Category: "GROSS Salary", Amount: 1}))
	assert.False(t, IsDeduction(dto.PayslipItem{Category: "Income Tax", Amount: 0}))
}
