package dto

// Error codes returned in ErrorResponse.Error
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeAccessDenied       = "DOCUMENT_ACCESS_DENIED"
	ErrCodeCorrupt            = "DOCUMENT_CORRUPT"
	ErrCodeProcessingFailed   = "DOCUMENT_PROCESSING_FAILED"
	ErrCodeExportFailed       = "EXPORT_FAILED"
	MessageNoRecognizedFields = "no recognizable fields"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalyzeResponse is the result of analysing one certificate.
type AnalyzeResponse struct {
	DocumentID   string             `json:"document_id" yaml:"document_id"`
	Filename     string             `json:"filename,omitempty" yaml:"filename,omitempty"`
	PageCount    int                `json:"page_count" yaml:"page_count"`
	Items        []PayslipItem      `json:"items" yaml:"items"`
	Explanations []ExplainedItem    `json:"explanations" yaml:"explanations"`
	Deductions   DeductionBreakdown `json:"deductions" yaml:"deductions"`
	Message      string             `json:"message,omitempty" yaml:"message,omitempty"`
	Trace        []FieldTrace       `json:"trace,omitempty" yaml:"trace,omitempty"`
	ProcessedAt  string             `json:"processed_at" yaml:"processed_at"`
}

// BatchItemResponse is the outcome for one file of a batch.
type BatchItemResponse struct {
	Filename string           `json:"filename"`
	Result   *AnalyzeResponse `json:"result,omitempty"`
	Error    *ErrorResponse   `json:"error,omitempty"`
}

// BatchAnalyzeResponse lists batch outcomes in upload order.
type BatchAnalyzeResponse struct {
	Results []BatchItemResponse `json:"results"`
}
