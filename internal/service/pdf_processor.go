package service

import (
	"bytes"
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/ledongthuc/pdf"
)

// PDFProcessor handles PDF text extraction
type PDFProcessor struct {
	logger domain.Logger
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(logger domain.Logger) *PDFProcessor {
	return &PDFProcessor{
		logger: logger,
	}
}

// ExtractText returns the text of every page, each followed by a newline,
// with leading and trailing whitespace removed from the whole.
func (p *PDFProcessor) ExtractText(pdfBytes []byte) (string, error) {
	pages, err := p.ExtractPages(pdfBytes)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, text := range pages {
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// ExtractPages returns the plain text of each page in document order.
// Any page failure aborts the whole document.
func (p *PDFProcessor) ExtractPages(pdfBytes []byte) (pages []string, err error) {
	// ledongthuc/pdf panics on some malformed objects; treat that like any
	// other error from the stage that was running.
	current := 0
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(current, r)
			pages = nil
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}

	numPages := reader.NumPage()
	p.logger.Debug("PDF opened", "pages", numPages, "bytes", len(pdfBytes))

	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		current = i
		page := reader.Page(i)
		if page.V.IsNull() {
			return nil, apperrors.NewExtractionError(i, domain.ErrPageNotFound)
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, apperrors.NewExtractionError(i, err)
		}
		p.logger.Debug("PDF page extracted", "page", i, "total", numPages, "chars", len(text))
		pages = append(pages, text)
	}

	return pages, nil
}

// recoveredError classifies a panic value: page 0 means the document was
// still being opened.
func recoveredError(page int, r interface{}) error {
	cause := fmt.Errorf("%v", r)
	if page == 0 {
		return apperrors.NewParseError(cause)
	}
	return apperrors.NewExtractionError(page, cause)
}
