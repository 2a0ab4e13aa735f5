package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/payslip-analyzer/service"
)

var (
	extractPassword string
	extractOut      string
	extractTrace    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract line items from a certificate PDF",
	Long: `Extract the line items of a single Lohnsteuerbescheinigung PDF and print them.

Examples:
  payslip-analyzer extract lstb-2024.pdf
  payslip-analyzer extract lstb-2024.pdf -o yaml --trace
  payslip-analyzer extract lstb-2024.pdf -o xlsx --out lstb-2024.xlsx
  payslip-analyzer extract protected.pdf --password geheim`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := ParseOutputFormat(outputFormat)
		if err != nil {
			return err
		}
		if format == OutputFormatXLSX && extractOut == "" {
			return fmt.Errorf("--out is required for xlsx output")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		resp, err := a.payslipService.Analyze(cmd.Context(), service.AnalyzeRequest{
			Filename: filepath.Base(path),
			Data:     data,
			Password: extractPassword,
			Trace:    extractTrace,
		})
		if err != nil {
			return err
		}

		if extractOut != "" {
			return OutputToFile(extractOut, format, resp)
		}
		return OutputTo(cmd.OutOrStdout(), format, resp)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractPassword, "password", "", "password for encrypted PDFs")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "write output to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractTrace, "trace", false, "include per-label diagnostics")
}
