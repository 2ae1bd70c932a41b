package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	extractHandler *ExtractHandler,
	middleware func(http.Handler) http.Handler,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware)

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pdf-text-extractor"})
	}).Methods(http.MethodGet)

	// API prefix. Subrouters do not inherit the parent's fallback handlers.
	api := router.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = http.HandlerFunc(notFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	api.HandleFunc("/extract", extractHandler.Extract).Methods(http.MethodPost)
	api.HandleFunc("/extract/storage", extractHandler.ExtractFromStorage).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
