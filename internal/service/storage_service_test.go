package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/testutil"
	apperrors "pdf-text-extractor/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errObjectNotFound = errors.New("object not found")

func newTestStorageService(storage domain.ObjectStorage) *StorageService {
	logger := NewMockLogger()
	extraction := NewExtractionService(NewPDFProcessor(logger), 0, logger)
	return NewStorageService(storage, extraction, logger)
}

func TestStorageService_ExtractObject(t *testing.T) {
	storage := NewMockObjectStorage()
	storage.objects["cvs/user-1/cv.pdf"] = testutil.BuildPDF("Jane Doe", "Experience")
	svc := newTestStorageService(storage)

	result := svc.ExtractObject(context.Background(), "cvs", "user-1/cv.pdf")
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Jane Doe\nExperience", result.Text)
}

func TestStorageService_Validation(t *testing.T) {
	svc := newTestStorageService(NewMockObjectStorage())

	result := svc.ExtractObject(context.Background(), " ", "a.pdf")
	assert.False(t, result.Success)
	assert.Equal(t, "bucket is required", result.Error)
	assert.True(t, apperrors.IsType(result.Err, apperrors.ErrorTypeValidation))

	result = svc.ExtractObject(context.Background(), "cvs", "")
	assert.False(t, result.Success)
	assert.Equal(t, "path is required", result.Error)
}

func TestStorageService_NotConfigured(t *testing.T) {
	svc := newTestStorageService(nil)

	assert.False(t, svc.Available())
	result := svc.ExtractObject(context.Background(), "cvs", "a.pdf")
	assert.False(t, result.Success)
	assert.True(t, apperrors.IsType(result.Err, apperrors.ErrorTypeUnavailable))
}

func TestStorageService_DownloadFailure(t *testing.T) {
	svc := newTestStorageService(NewMockObjectStorage())

	result := svc.ExtractObject(context.Background(), "cvs", "missing.pdf")
	assert.False(t, result.Success)
	assert.Equal(t, errObjectNotFound.Error(), result.Error)
	assert.Equal(t, 502, apperrors.GetStatusCode(result.Err))
}

func TestStorageService_BackendUnavailable(t *testing.T) {
	storage := NewMockObjectStorage()
	storage.err = fmt.Errorf("init: %w", domain.ErrStorageUnavailable)
	svc := newTestStorageService(storage)

	result := svc.ExtractObject(context.Background(), "cvs", "a.pdf")
	assert.False(t, result.Success)
	assert.True(t, apperrors.IsType(result.Err, apperrors.ErrorTypeUnavailable))
}

func TestStorageService_StoredObjectNotAPDF(t *testing.T) {
	storage := NewMockObjectStorage()
	storage.objects["cvs/notes.txt"] = []byte("hello world")
	svc := newTestStorageService(storage)

	result := svc.ExtractObject(context.Background(), "cvs", "notes.txt")
	assert.False(t, result.Success)
	assert.True(t, apperrors.IsType(result.Err, apperrors.ErrorTypeParse))
}
