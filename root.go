package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/payslip-analyzer/catalog"
	"github.com/Aashish23092/payslip-analyzer/config"
	"github.com/Aashish23092/payslip-analyzer/glossary"
	"github.com/Aashish23092/payslip-analyzer/service"
	"github.com/Aashish23092/payslip-analyzer/utils/lohnsteuer"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "payslip-analyzer",
	Short: "Extract line items from German wage-tax certificates",
	Long: `payslip-analyzer reads the text layer of a Lohnsteuerbescheinigung PDF and
returns its printed amounts (gross wage, withheld taxes, social insurance
contributions) as categorized line items.

It runs either as an HTTP service or as a one-shot command line tool.`,
	Version:      GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.payslip-analyzer/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", string(OutputFormatJSON), "output format: json, yaml or xlsx",
	)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// app holds the components shared by the commands.
type app struct {
	cfg            *config.Config
	logger         *slog.Logger
	payslipService *service.PayslipService
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "entries", cat.Len(), "categories", cat.Categories(), "path", cfg.CatalogPath)
	if missing := glossary.Missing(cat.Categories()); len(missing) > 0 {
		logger.Warn("categories without explanation", "categories", missing)
	}

	extractor := lohnsteuer.NewExtractor(cat, cfg.WindowWidth)
	payslipService := service.NewPayslipService(service.NewPDFProcessor(), extractor, cfg.PageBreakMarker, logger)

	return &app{
		cfg:            cfg,
		logger:         logger,
		payslipService: payslipService,
	}, nil
}
