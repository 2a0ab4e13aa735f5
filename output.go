package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aashish23092/payslip-analyzer/dto"
	"github.com/Aashish23092/payslip-analyzer/exporter"
)

// OutputFormat selects how extract prints its result.
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatXLSX OutputFormat = "xlsx"
)

// ParseOutputFormat validates the --output flag.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatJSON, OutputFormatYAML, OutputFormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// OutputTo writes resp to w in the given format.
func OutputTo(w io.Writer, format OutputFormat, resp *dto.AnalyzeResponse) error {
	switch format {
	case OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(resp)
	case OutputFormatXLSX:
		return exporter.Write(w, resp)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// OutputToFile writes resp to path, reporting a failed close as well as a failed write.
func OutputToFile(path string, format OutputFormat, resp *dto.AnalyzeResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := OutputTo(f, format, resp); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
