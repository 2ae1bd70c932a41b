package config

import (
	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/infra/supabase"
	"pdf-text-extractor/internal/service"
	"pdf-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	ExtractionService domain.ExtractionService
	StorageService    domain.ObjectExtractionService

	// StdinExtractionService reads the whole stream; MAX_INPUT_SIZE only
	// bounds the HTTP surface.
	StdinExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	return NewContainerWithLogger(config, logger.NewLogger(config.GetLogLevel()))
}

// NewContainerWithLogger wires the services around an existing config and logger
func NewContainerWithLogger(config domain.Config, appLogger domain.Logger) *Container {
	processor := service.NewPDFProcessor(appLogger)
	extractionService := service.NewExtractionService(processor, config.GetMaxInputSize(), appLogger)

	// Storage is optional; the stdin path never needs it.
	var storage domain.ObjectStorage
	if config.GetSupabaseURL() != "" && config.GetSupabaseKey() != "" {
		client := supabase.NewStorageClient(config, appLogger)
		if err := client.Initialize(); err != nil {
			appLogger.Warn("Supabase storage disabled", "error", err)
		} else {
			storage = client
		}
	}

	return &Container{
		Config:            config,
		Logger:            appLogger,
		ExtractionService: extractionService,
		StorageService:    service.NewStorageService(storage, extractionService, appLogger),

		StdinExtractionService: service.NewExtractionService(processor, 0, appLogger),
	}
}
