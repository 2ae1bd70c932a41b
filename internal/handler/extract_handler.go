// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// envelopeOverhead leaves room for the JSON wrapper around the base64 data
const envelopeOverhead = 4 * 1024

type extractRequest struct {
	Data string `json:"data"`
}

type storageExtractRequest struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
}

// ExtractHandler handles text extraction requests
type ExtractHandler struct {
	extractionService domain.ExtractionService
	storageService    domain.ObjectExtractionService
	maxInputSize      int64
	logger            domain.Logger
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(
	extractionService domain.ExtractionService,
	storageService domain.ObjectExtractionService,
	maxInputSize int64,
	logger domain.Logger,
) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
		storageService:    storageService,
		maxInputSize:      maxInputSize,
		logger:            logger,
	}
}

// Extract handles base64 PDF payloads sent as text/plain or as
// {"data": "..."} JSON
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	encoded := string(body)
	if isJSONRequest(r) {
		var req extractRequest
		if err := json.Unmarshal(body, &req); err != nil {
			h.writeFailure(w, r, apperrors.NewValidationError("invalid JSON body", err.Error()))
			return
		}
		encoded = req.Data
	}

	h.respond(w, r, h.extractionService.Extract(encoded))
}

// ExtractFromStorage handles {"bucket": "...", "path": "..."} requests for
// PDFs already held in object storage
func (h *ExtractHandler) ExtractFromStorage(w http.ResponseWriter, r *http.Request) {
	if h.storageService == nil || !h.storageService.Available() {
		h.writeFailure(w, r, apperrors.NewUnavailableError("storage is not configured", domain.ErrStorageUnavailable))
		return
	}

	var req storageExtractRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, envelopeOverhead)).Decode(&req); err != nil {
		h.writeFailure(w, r, apperrors.NewValidationError("invalid JSON body", err.Error()))
		return
	}

	h.respond(w, r, h.storageService.ExtractObject(r.Context(), req.Bucket, req.Path))
}

func (h *ExtractHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if h.maxInputSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxInputSize+envelopeOverhead)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperrors.NewTooLargeError(h.maxInputSize, domain.ErrInputTooLarge)
		}
		return nil, apperrors.NewValidationError("failed to read request body", err.Error())
	}
	return body, nil
}

func (h *ExtractHandler) respond(w http.ResponseWriter, r *http.Request, result domain.Result) {
	status := http.StatusOK
	if !result.Success {
		status = apperrors.GetStatusCode(result.Err)
	}

	requestID, _ := GetRequestIDFromContext(r)
	h.logger.Debug("Extraction finished", "request_id", requestID, "success", result.Success, "status", status)
	writeResult(w, status, result)
}

func (h *ExtractHandler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.respond(w, r, domain.Failed(err))
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
