package service

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// ExtractionService decodes base64 input and runs text extraction,
// reporting every outcome as a domain.Result
type ExtractionService struct {
	extractor    domain.TextExtractor
	maxInputSize int64
	logger       domain.Logger
}

// NewExtractionService creates a new extraction service. A non-positive
// maxInputSize disables the size check.
func NewExtractionService(extractor domain.TextExtractor, maxInputSize int64, logger domain.Logger) *ExtractionService {
	return &ExtractionService{
		extractor:    extractor,
		maxInputSize: maxInputSize,
		logger:       logger,
	}
}

// Extract decodes encoded as base64 and extracts its text
func (s *ExtractionService) Extract(encoded string) domain.Result {
	if s.maxInputSize > 0 && int64(len(encoded)) > s.maxInputSize {
		return s.fail(apperrors.NewTooLargeError(s.maxInputSize, domain.ErrInputTooLarge))
	}

	pdfBytes, err := decodeBase64(encoded)
	if err != nil {
		return s.fail(apperrors.NewDecodeError(err))
	}
	return s.ExtractBytes(pdfBytes)
}

// ExtractFromReader buffers all of r, then behaves like Extract
func (s *ExtractionService) ExtractFromReader(r io.Reader) domain.Result {
	src := r
	if s.maxInputSize > 0 {
		src = io.LimitReader(r, s.maxInputSize+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return s.fail(apperrors.NewInternalError("failed to read input", err))
	}
	return s.Extract(string(data))
}

// ExtractBytes extracts text from already-decoded PDF bytes
func (s *ExtractionService) ExtractBytes(pdfBytes []byte) domain.Result {
	text, err := s.extractor.ExtractText(pdfBytes)
	if err != nil {
		return s.fail(err)
	}

	s.logger.Info("PDF text extracted", "bytes", len(pdfBytes), "chars", len(text))
	return domain.Succeeded(text)
}

func (s *ExtractionService) fail(err error) domain.Result {
	kind := apperrors.ErrorTypeInternal
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		kind = appErr.Type
	}

	result := domain.Failed(err)
	s.logger.Warn("PDF extraction failed", "kind", kind, "error", result.Error)
	return result
}

// decodeBase64 ignores ASCII whitespace (line wrapping, the trailing
// newline of a shell pipe) and rejects anything else outside the
// standard alphabet.
func decodeBase64(encoded string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return -1
		}
		return r
	}, encoded)
	return base64.StdEncoding.DecodeString(cleaned)
}
