package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// wordSpaceMultiplier is the gap between two text runs, relative to the font size,
// above which they are separate words.
const wordSpaceMultiplier = 0.3

// PDFProcessor decodes the text layer of a PDF, one string per page in reading order.
// Failures are returned as *DocumentError.
//
//go:generate mockgen -destination=mocks/mock_pdf_processor.go -package=mocks -source=pdf_processor.go PDFProcessor
type PDFProcessor interface {
	ExtractPages(ctx context.Context, pdfData []byte, password string) ([]string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

func (p *pdfProcessor) ExtractPages(ctx context.Context, pdfData []byte, password string) ([]string, error) {
	if len(pdfData) == 0 {
		return nil, newDocumentError(DocumentCorrupt, errors.New("empty document"))
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		if !isEncryptionError(err) {
			return nil, newDocumentError(DocumentCorrupt, err)
		}

		// ledongthuc/pdf only handles the older security handlers, so pdfcpu decrypts
		decrypted, derr := decrypt(pdfData, password)
		if derr != nil {
			return nil, derr
		}

		r, err = pdf.NewReader(bytes.NewReader(decrypted), int64(len(decrypted)))
		if err != nil {
			return nil, newDocumentError(DocumentCorrupt, err)
		}
	}

	return readPages(ctx, r)
}

func decrypt(pdfData []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		if isPasswordError(err) {
			return nil, newDocumentError(DocumentAccessDenied, err)
		}
		return nil, newDocumentError(DocumentProcessingFailed, fmt.Errorf("failed to decrypt: %w", err))
	}

	return out.Bytes(), nil
}

func readPages(ctx context.Context, r *pdf.Reader) (pages []string, err error) {
	// malformed content streams make the decoder panic
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = newDocumentError(DocumentProcessingFailed, fmt.Errorf("text decoding panicked: %v", rec))
		}
	}()

	total := r.NumPage()
	if total == 0 {
		return nil, newDocumentError(DocumentCorrupt, errors.New("document has no pages"))
	}

	pages = make([]string, 0, total)
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, newDocumentError(DocumentProcessingFailed, fmt.Errorf("page %d: %w", pageIndex, err))
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, rowText(row.Content))
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	return pages, nil
}

// rowText joins the runs of one text row left to right, inserting a space wherever the
// horizontal gap between two runs is wider than a word space.
func rowText(content []pdf.Text) string {
	texts := make([]pdf.Text, len(content))
	copy(texts, content)
	sort.SliceStable(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

	var b strings.Builder
	var prevEnd float64
	lastSpace := true
	for i, t := range texts {
		if t.S == "" {
			continue
		}
		if i > 0 && !lastSpace && !strings.HasPrefix(t.S, " ") {
			if t.X-prevEnd > wordSpaceMultiplier*t.FontSize {
				b.WriteString(" ")
			}
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
		lastSpace = strings.HasSuffix(t.S, " ")
	}

	return b.String()
}

func isEncryptionError(err error) bool {
	if errors.Is(err, pdf.ErrInvalidPassword) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "encrypt") || strings.Contains(msg, "password")
}

func isPasswordError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "password")
}
