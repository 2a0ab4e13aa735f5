package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the payslip endpoints and the health check.
func NewRouter(payslipHandler *PayslipHandler, maxMultipartMemory int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = maxMultipartMemory

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Payslip Analyzer",
		})
	})

	api := router.Group("/api/v1")
	{
		payslip := api.Group("/payslip")
		{
			payslip.POST("/analyze", payslipHandler.Analyze)
			payslip.POST("/analyze-text", payslipHandler.AnalyzeText)
			payslip.POST("/analyze-batch", payslipHandler.AnalyzeBatch)
			payslip.POST("/export", payslipHandler.Export)
		}
	}

	return router
}
