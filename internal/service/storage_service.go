package service

import (
	"context"
	"errors"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// StorageService extracts text from PDFs held in object storage
type StorageService struct {
	storage    domain.ObjectStorage
	extraction domain.ExtractionService
	logger     domain.Logger
}

// NewStorageService creates a new storage service. storage may be nil when
// no backend is configured; requests then fail as unavailable.
func NewStorageService(storage domain.ObjectStorage, extraction domain.ExtractionService, logger domain.Logger) *StorageService {
	return &StorageService{
		storage:    storage,
		extraction: extraction,
		logger:     logger,
	}
}

// Available reports whether a storage backend is configured
func (s *StorageService) Available() bool {
	return s.storage != nil
}

// ExtractObject downloads bucket/path and extracts its text. The object
// holds raw PDF bytes, so there is no base64 step.
func (s *StorageService) ExtractObject(ctx context.Context, bucket, path string) domain.Result {
	bucket = strings.TrimSpace(bucket)
	path = strings.TrimSpace(path)
	if bucket == "" {
		return domain.Failed(apperrors.NewValidationError("bucket is required"))
	}
	if path == "" {
		return domain.Failed(apperrors.NewValidationError("path is required"))
	}
	if s.storage == nil {
		return domain.Failed(apperrors.NewUnavailableError("storage is not configured", domain.ErrStorageUnavailable))
	}

	data, err := s.storage.Download(ctx, bucket, path)
	if err != nil {
		s.logger.Error("Failed to download PDF", err, "bucket", bucket, "path", path)
		if errors.Is(err, domain.ErrStorageUnavailable) {
			return domain.Failed(apperrors.NewUnavailableError("storage is not configured", err))
		}
		return domain.Failed(apperrors.NewStorageError("failed to download PDF", err))
	}

	return s.extraction.ExtractBytes(data)
}
