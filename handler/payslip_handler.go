package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/payslip-analyzer/dto"
	"github.com/Aashish23092/payslip-analyzer/exporter"
	"github.com/Aashish23092/payslip-analyzer/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayslipHandler struct {
	payslipService *service.PayslipService
	maxFileSize    int64
	maxBatchFiles  int
	logger         *slog.Logger
}

func NewPayslipHandler(payslipService *service.PayslipService, maxFileSize int64, maxBatchFiles int, logger *slog.Logger) *PayslipHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayslipHandler{
		payslipService: payslipService,
		maxFileSize:    maxFileSize,
		maxBatchFiles:  maxBatchFiles,
		logger:         logger,
	}
}

// Analyze handles the POST /payslip/analyze endpoint
func (h *PayslipHandler) Analyze(c *gin.Context) {
	req, ok := h.uploadRequest(c)
	if !ok {
		return
	}

	resp, err := h.payslipService.Analyze(c.Request.Context(), req)
	if err != nil {
		h.sendDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeText handles the POST /payslip/analyze-text endpoint
func (h *PayslipHandler) AnalyzeText(c *gin.Context) {
	var body dto.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, "Request body must contain text", err)
		return
	}

	resp, err := h.payslipService.AnalyzeText(c.Request.Context(), body.Text, body.Trace)
	if err != nil {
		h.sendDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeBatch handles the POST /payslip/analyze-batch endpoint
func (h *PayslipHandler) AnalyzeBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, "Failed to parse multipart form", err)
		return
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, "No files provided", nil)
		return
	}
	if h.maxBatchFiles > 0 && len(files) > h.maxBatchFiles {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest,
			fmt.Sprintf("At most %d files per batch", h.maxBatchFiles), nil)
		return
	}

	password := c.PostForm("password")
	trace := parseBool(c.PostForm("trace"))

	reqs := make([]service.AnalyzeRequest, 0, len(files))
	for _, file := range files {
		upload := &dto.AnalyzeUploadRequest{File: file, Password: password, Trace: trace}
		if err := upload.Validate(h.maxFileSize); err != nil {
			h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, fmt.Sprintf("%s: %v", file.Filename, err), nil)
			return
		}
		data, err := readUpload(file)
		if err != nil {
			h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, "Failed to read uploaded file", err)
			return
		}
		reqs = append(reqs, service.AnalyzeRequest{Filename: file.Filename, Data: data, Password: password, Trace: trace})
	}

	h.logger.Info("processing batch", "files", len(reqs))

	results := h.payslipService.AnalyzeBatch(c.Request.Context(), reqs)
	out := dto.BatchAnalyzeResponse{Results: make([]dto.BatchItemResponse, 0, len(results))}
	for _, r := range results {
		item := dto.BatchItemResponse{Filename: r.Filename, Result: r.Response}
		if r.Err != nil {
			status, code := statusForError(r.Err)
			item.Error = &dto.ErrorResponse{Error: code, Message: r.Err.Error(), Code: status}
		}
		out.Results = append(out.Results, item)
	}

	c.JSON(http.StatusOK, out)
}

// Export handles the POST /payslip/export endpoint and returns an XLSX workbook
func (h *PayslipHandler) Export(c *gin.Context) {
	req, ok := h.uploadRequest(c)
	if !ok {
		return
	}

	resp, err := h.payslipService.Analyze(c.Request.Context(), req)
	if err != nil {
		h.sendDocumentError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := exporter.Write(&buf, resp); err != nil {
		h.logger.Error("export failed", "document_id", resp.DocumentID, "error", err)
		h.sendError(c, http.StatusInternalServerError, dto.ErrCodeExportFailed, "Failed to build workbook", err)
		return
	}

	name := strings.TrimSuffix(req.Filename, filepath.Ext(req.Filename)) + ".xlsx"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *PayslipHandler) uploadRequest(c *gin.Context) (service.AnalyzeRequest, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, "file is required", err)
		return service.AnalyzeRequest{}, false
	}

	upload := &dto.AnalyzeUploadRequest{
		File:     file,
		Password: c.PostForm("password"),
		Trace:    parseBool(c.PostForm("trace")),
	}
	if err := upload.Validate(h.maxFileSize); err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, err.Error(), nil)
		return service.AnalyzeRequest{}, false
	}

	data, err := readUpload(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, "Failed to read uploaded file", err)
		return service.AnalyzeRequest{}, false
	}

	h.logger.Info("received document", "filename", file.Filename, "size", file.Size)

	return service.AnalyzeRequest{
		Filename: file.Filename,
		Data:     data,
		Password: upload.Password,
		Trace:    upload.Trace,
	}, true
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func (h *PayslipHandler) sendDocumentError(c *gin.Context, err error) {
	status, code := statusForError(err)
	h.sendError(c, status, code, "Could not process this document", err)
}

// statusForError maps the document error taxonomy to HTTP status and error code.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrDocumentAccessDenied):
		return http.StatusUnauthorized, dto.ErrCodeAccessDenied
	case errors.Is(err, service.ErrDocumentCorrupt):
		return http.StatusUnprocessableEntity, dto.ErrCodeCorrupt
	default:
		return http.StatusInternalServerError, dto.ErrCodeProcessingFailed
	}
}

// sendError sends a structured error response
func (h *PayslipHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.logger.Warn("request failed", "message", message, "error", err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
