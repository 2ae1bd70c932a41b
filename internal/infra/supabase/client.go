package supabase

import (
	"context"
	"fmt"

	"pdf-text-extractor/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// StorageClient implements domain.ObjectStorage on top of Supabase Storage
type StorageClient struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewStorageClient creates a storage client. Call Initialize before use.
func NewStorageClient(config domain.Config, logger domain.Logger) *StorageClient {
	return &StorageClient{
		config: config,
		logger: logger,
	}
}

// Initialize establishes a connection to Supabase
func (s *StorageClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase storage client initialized", "url", supabaseURL)
	return nil
}

// Download fetches the object at path in bucket
func (s *StorageClient) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	if s.client == nil || s.client.Storage == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.client.Storage.DownloadFile(bucket, path)
	if err != nil {
		return nil, fmt.Errorf("download %s/%s: %w", bucket, path, err)
	}

	s.logger.Debug("Downloaded object", "bucket", bucket, "path", path, "bytes", len(data))
	return data, nil
}
