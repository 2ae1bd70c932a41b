package handler

import (
	"context"
	"net/http"
	"time"

	"pdf-text-extractor/internal/domain"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestMiddleware tags each request with an ID and logs its outcome
type RequestMiddleware struct {
	logger domain.Logger
}

// NewRequestMiddleware creates a new request middleware
func NewRequestMiddleware(logger domain.Logger) *RequestMiddleware {
	return &RequestMiddleware{
		logger: logger,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware reuses a caller-supplied request ID when it is a valid UUID,
// otherwise it generates one
func (m *RequestMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(rec, r.WithContext(ctx))

		m.logger.Info("Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
