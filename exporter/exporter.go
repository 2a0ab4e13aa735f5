// Package exporter writes analysis results to an XLSX workbook.
package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/payslip-analyzer/dto"
	"github.com/Aashish23092/payslip-analyzer/glossary"
)

const (
	ItemsSheet      = "Items"
	DeductionsSheet = "Deductions"

	// built-in number format "#,##0.00"
	amountNumFmt = 4
)

// Export builds a workbook with an items sheet and a deductions sheet.
func Export(resp *dto.AnalyzeResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ItemsSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DeductionsSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := fillItems(f, resp.Items); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := fillDeductions(f, resp.Deductions); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write exports resp and writes the workbook to w.
func Write(w io.Writer, resp *dto.AnalyzeResponse) error {
	f, err := Export(resp)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func fillItems(f *excelize.File, items []dto.PayslipItem) error {
	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		var explanation interface{}
		if glossary.Explainable(item.Category) {
			explanation = glossary.Explain(item.Category)
		}
		rows = append(rows, []interface{}{item.Category, item.Amount, explanation})
	}

	return fillSheet(f, ItemsSheet, []string{"Category", "Amount (EUR)", "Explanation"}, rows)
}

func fillDeductions(f *excelize.File, b dto.DeductionBreakdown) error {
	rows := make([][]interface{}, 0, len(b.Slices)+1)
	for _, s := range b.Slices {
		rows = append(rows, []interface{}{s.Category, s.Amount, s.Share})
	}
	rows = append(rows, []interface{}{"Total", b.Total, nil})

	return fillSheet(f, DeductionsSheet, []string{"Category", "Amount (EUR)", "Share (%)"}, rows)
}

func fillSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for c, title := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if len(rows) > 0 {
		to, err := excelize.CoordinatesToCellName(2, len(rows)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "B2", to, amountStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 36); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "C", "C", 60)
}
