package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aashish23092/payslip-analyzer/dto"
	"github.com/Aashish23092/payslip-analyzer/glossary"
	"github.com/Aashish23092/payslip-analyzer/utils"
	"github.com/Aashish23092/payslip-analyzer/utils/lohnsteuer"
)

// AnalyzeRequest is one certificate to analyse.
type AnalyzeRequest struct {
	Filename string
	Data     []byte
	Password string
	Trace    bool
}

// BatchResult pairs a file with its analysis outcome.
type BatchResult struct {
	Filename string
	Response *dto.AnalyzeResponse
	Err      error
}

type PayslipService struct {
	pdfProcessor    PDFProcessor
	extractor       *lohnsteuer.Extractor
	pageBreakMarker string
	logger          *slog.Logger
}

func NewPayslipService(
	pdfProcessor PDFProcessor,
	extractor *lohnsteuer.Extractor,
	pageBreakMarker string,
	logger *slog.Logger,
) *PayslipService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageBreakMarker == "" {
		pageBreakMarker = utils.DefaultPageBreakMarker
	}
	return &PayslipService{
		pdfProcessor:    pdfProcessor,
		extractor:       extractor,
		pageBreakMarker: pageBreakMarker,
		logger:          logger,
	}
}

// Analyze decodes a PDF certificate and extracts its line items. Decoding failures are
// returned as *DocumentError; a document without any known field is not an error.
func (s *PayslipService) Analyze(ctx context.Context, req AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	documentID := uuid.New().String()
	log := s.logger.With("document_id", documentID, "filename", req.Filename)
	log.Info("analysing document", "bytes", len(req.Data))

	pages, err := s.pdfProcessor.ExtractPages(ctx, req.Data, req.Password)
	if err != nil {
		if _, ok := KindOf(err); !ok && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			err = newDocumentError(DocumentProcessingFailed, err)
		}
		log.Error("text extraction failed", "error", err)
		return nil, err
	}

	text := utils.FlattenPages(pages, s.pageBreakMarker)
	resp := s.analyzeText(log, documentID, text, req.Trace)
	resp.Filename = req.Filename
	resp.PageCount = len(pages)

	return resp, nil
}

// AnalyzeText runs the extractor on text that was already taken from a certificate.
func (s *PayslipService) AnalyzeText(ctx context.Context, text string, trace bool) (*dto.AnalyzeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	documentID := uuid.New().String()
	log := s.logger.With("document_id", documentID)

	return s.analyzeText(log, documentID, utils.NormalizeText(text), trace), nil
}

// AnalyzeBatch analyses several certificates concurrently. Results keep the order of reqs.
func (s *PayslipService) AnalyzeBatch(ctx context.Context, reqs []AnalyzeRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req AnalyzeRequest) {
			defer wg.Done()
			resp, err := s.Analyze(ctx, req)
			results[i] = BatchResult{Filename: req.Filename, Response: resp, Err: err}
		}(i, req)
	}
	wg.Wait()

	return results
}

func (s *PayslipService) analyzeText(log *slog.Logger, documentID, text string, trace bool) *dto.AnalyzeResponse {
	items, traces := s.extractor.ExtractWithTrace(text)

	for _, tr := range traces {
		log.Debug("field", "label", tr.Label, "category", tr.Category, "status", tr.Status, "raw", tr.Raw)
	}
	log.Info("extraction completed", "items", len(items), "text_length", len(text))

	resp := &dto.AnalyzeResponse{
		DocumentID:   documentID,
		Items:        items,
		Explanations: Explain(items),
		Deductions:   BuildBreakdown(items),
		ProcessedAt:  time.Now().Format(time.RFC3339),
	}
	if len(items) == 0 {
		resp.Message = dto.MessageNoRecognizedFields
	}
	if trace {
		resp.Trace = traces
	}

	return resp
}

// Explain returns glossary entries for the explainable items.
func Explain(items []dto.PayslipItem) []dto.ExplainedItem {
	out := make([]dto.ExplainedItem, 0, len(items))
	for _, item := range items {
		if !glossary.Explainable(item.Category) {
			continue
		}
		out = append(out, dto.ExplainedItem{
			Category:    item.Category,
			Explanation: glossary.Explain(item.Category),
		})
	}
	return out
}
