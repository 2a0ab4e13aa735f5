package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

// AnalyzeUploadRequest represents an uploaded certificate.
type AnalyzeUploadRequest struct {
	File     *multipart.FileHeader
	Password string
	Trace    bool
}

// Validate performs basic validation on the request
func (r *AnalyzeUploadRequest) Validate(maxSize int64) error {
	if r.File == nil {
		return errors.New("file is required")
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return errors.New("invalid file type. Supported: PDF")
	}
	if maxSize > 0 && r.File.Size > maxSize {
		return fmt.Errorf("file exceeds maximum size of %d bytes", maxSize)
	}
	return nil
}

// AnalyzeTextRequest carries already extracted document text.
type AnalyzeTextRequest struct {
	Text  string `json:"text" binding:"required"`
	Trace bool   `json:"trace"`
}
