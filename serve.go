package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Aashish23092/payslip-analyzer/handler"
)

const shutdownTimeout = 10 * time.Second

var serveHost string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the payslip analyzer HTTP server.

Endpoints:
  GET  /health                          - health check
  POST /api/v1/payslip/analyze          - analyze an uploaded certificate
  POST /api/v1/payslip/analyze-text     - analyze already extracted text
  POST /api/v1/payslip/analyze-batch    - analyze several certificates
  POST /api/v1/payslip/export           - analyze and download as XLSX

Examples:
  payslip-analyzer serve
  PAYSLIP_SERVER_PORT=3000 payslip-analyzer serve --host 0.0.0.0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		gin.SetMode(a.cfg.GinMode)

		payslipHandler := handler.NewPayslipHandler(a.payslipService, a.cfg.MaxFileSize, a.cfg.MaxBatchFiles, a.logger)
		router := handler.NewRouter(payslipHandler, a.cfg.MaxFileSize)

		srv := &http.Server{
			Addr:              net.JoinHostPort(serveHost, a.cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("starting payslip analyzer", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		ctx := cmd.Context()
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
}
