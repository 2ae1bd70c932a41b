package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-text-extractor/internal/config"
	"pdf-text-extractor/internal/handler"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve text extraction over HTTP",
	Long: `serve starts an HTTP server exposing:

  GET  /health
  POST /api/v1/extract           base64 body (text/plain) or {"data": "..."}
  POST /api/v1/extract/storage   {"bucket": "...", "path": "..."} (needs SUPABASE_URL and SUPABASE_KEY)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		container := config.NewContainer()

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = container.Config.GetServerPort()
		}
		return runServer(container, ":"+port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (default: $PORT, $SERVER_PORT or 8080)")
}

func runServer(container *config.Container, addr string) error {
	extractHandler := handler.NewExtractHandler(
		container.ExtractionService,
		container.StorageService,
		container.Config.GetMaxInputSize(),
		container.Logger,
	)
	requestMiddleware := handler.NewRequestMiddleware(container.Logger)

	router := handler.NewRouter(
		extractHandler,
		requestMiddleware.Middleware,
		container.Config.GetAllowedOrigins(),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server failed to start", err)
		}
		return err
	case <-quit:
	}

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Server shutdown failed", err)
		return err
	}

	container.Logger.Info("Server exited")
	return nil
}
