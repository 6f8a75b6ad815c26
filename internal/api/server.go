package api

import (
	"net/http"
	"time"

	chatapi "github.com/NielsFilter/learnai/internal/api/chat"
	documentapi "github.com/NielsFilter/learnai/internal/api/document"
	"github.com/NielsFilter/learnai/internal/api/middleware"
	projectapi "github.com/NielsFilter/learnai/internal/api/project"
	quizapi "github.com/NielsFilter/learnai/internal/api/quiz"
	songapi "github.com/NielsFilter/learnai/internal/api/song"
	statsapi "github.com/NielsFilter/learnai/internal/api/stats"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handlers bundles every resource handler for router setup.
type Handlers struct {
	Project  *projectapi.Handler
	Document *documentapi.Handler
	Chat     *chatapi.Handler
	Quiz     *quizapi.Handler
	Song     *songapi.Handler
	Stats    *statsapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *Handlers, verifier middleware.TokenVerifier, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint, outside auth
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Everything else requires a valid bearer token
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(verifier))

		projectapi.RegisterRoutes(r, h.Project)
		documentapi.RegisterRoutes(r, h.Document)
		chatapi.RegisterRoutes(r, h.Chat)
		quizapi.RegisterRoutes(r, h.Quiz)
		songapi.RegisterRoutes(r, h.Song)
		statsapi.RegisterRoutes(r, h.Stats)
	})

	return r
}
