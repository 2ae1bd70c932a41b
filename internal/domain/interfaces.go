package domain

import (
	"context"
	"io"
)

// TextExtractor pulls plain text out of a decoded PDF document
type TextExtractor interface {
	ExtractText(pdfBytes []byte) (string, error)
}

// ExtractionService turns raw input into a Result
type ExtractionService interface {
	Extract(encoded string) Result
	ExtractFromReader(r io.Reader) Result
	ExtractBytes(pdfBytes []byte) Result
}

// ObjectExtractionService extracts text from PDFs held in object storage
type ObjectExtractionService interface {
	ExtractObject(ctx context.Context, bucket, path string) Result
	Available() bool
}

// ObjectStorage fetches stored PDF objects
type ObjectStorage interface {
	Download(ctx context.Context, bucket, path string) ([]byte, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxInputSize() int64
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetAllowedOrigins() []string
}
