package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/payslip-analyzer/catalog"
	"github.com/Aashish23092/payslip-analyzer/dto"
	"github.com/Aashish23092/payslip-analyzer/service"
	"github.com/Aashish23092/payslip-analyzer/service/mocks"
	"github.com/Aashish23092/payslip-analyzer/utils/lohnsteuer"
)

const certificateText = "3. Bruttoarbeitslohn einschl. Sachbezüge 5.200 50 4. Einbehaltene Lohnsteuer von 3. 1.200 00"

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockPDFProcessor) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	processor := mocks.NewMockPDFProcessor(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	extractor := lohnsteuer.NewExtractor(catalog.Default(), lohnsteuer.DefaultWindowWidth)
	svc := service.NewPayslipService(processor, extractor, "", logger)

	h := NewPayslipHandler(svc, 1024*1024, 3, logger)
	return NewRouter(h, 8<<20), processor
}

func multipartBody(t *testing.T, field string, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestAnalyzeUpload(t *testing.T) {
	router, processor := newTestRouter(t)

	pdfData := []byte("%PDF-1.7 fake")
	processor.EXPECT().ExtractPages(gomock.Any(), pdfData, "geheim").Return([]string{certificateText}, nil)

	body, contentType := multipartBody(t, "file", map[string][]byte{"lstb.pdf": pdfData}, map[string]string{
		"password": "geheim",
		"trace":    "true",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "lstb.pdf", resp.Filename)
	assert.Equal(t, []dto.PayslipItem{
		{Category: "Gross Salary", Amount: 5200.50},
		{Category: "Income Tax", Amount: 1200},
	}, resp.Items)
	assert.NotEmpty(t, resp.Trace)
}

func TestAnalyzeUploadErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "access denied", err: &service.DocumentError{Kind: service.DocumentAccessDenied, Err: errors.New("wrong password")}, wantStatus: http.StatusUnauthorized, wantCode: dto.ErrCodeAccessDenied},
		{name: "corrupt", err: &service.DocumentError{Kind: service.DocumentCorrupt, Err: errors.New("bad xref")}, wantStatus: http.StatusUnprocessableEntity, wantCode: dto.ErrCodeCorrupt},
		{name: "processing failed", err: errors.New("decoder exploded"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrCodeProcessingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, processor := newTestRouter(t)
			processor.EXPECT().ExtractPages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			body, contentType := multipartBody(t, "file", map[string][]byte{"doc.pdf": []byte("x")}, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantCode, errResp.Error)
			assert.Equal(t, tt.wantStatus, errResp.Code)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestAnalyzeUploadValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := multipartBody(t, "file", map[string][]byte{"scan.png": []byte("x")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, contentType = multipartBody(t, "other", map[string][]byte{"doc.pdf": []byte("x")}, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), dto.ErrCodeInvalidRequest)

	tooBig := bytes.Repeat([]byte("a"), 2*1024*1024)
	body, contentType = multipartBody(t, "file", map[string][]byte{"big.pdf": tooBig}, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maximum size")
}

func TestAnalyzeText(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze-text",
		strings.NewReader(`{"text": "Kein bekanntes Feld 12 00"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, dto.MessageNoRecognizedFields, resp.Message)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestAnalyzeTextMissingBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze-text", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeBatch(t *testing.T) {
	router, processor := newTestRouter(t)

	processor.EXPECT().ExtractPages(gomock.Any(), []byte("one"), "").Return([]string{certificateText}, nil)
	processor.EXPECT().ExtractPages(gomock.Any(), []byte("two"), "").
		Return(nil, &service.DocumentError{Kind: service.DocumentAccessDenied, Err: errors.New("password required")})

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range map[string]string{"a.pdf": "one", "b.pdf": "two"} {
		part, err := w.CreateFormFile("files[]", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze-batch", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	byName := map[string]dto.BatchItemResponse{}
	for _, r := range resp.Results {
		byName[r.Filename] = r
	}
	require.NotNil(t, byName["a.pdf"].Result)
	assert.Len(t, byName["a.pdf"].Result.Items, 2)
	require.NotNil(t, byName["b.pdf"].Error)
	assert.Equal(t, dto.ErrCodeAccessDenied, byName["b.pdf"].Error.Error)
}

func TestAnalyzeBatchTooManyFiles(t *testing.T) {
	router, _ := newTestRouter(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"} {
		part, err := w.CreateFormFile("files[]", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("x"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/analyze-batch", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At most 3 files")
}

func TestExport(t *testing.T) {
	router, processor := newTestRouter(t)
	processor.EXPECT().ExtractPages(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{certificateText}, nil)

	body, contentType := multipartBody(t, "file", map[string][]byte{"lstb.pdf": []byte("x")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslip/export", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "lstb.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Items", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Income Tax", value)
}
