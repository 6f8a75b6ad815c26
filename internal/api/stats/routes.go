package stats

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers stats routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/stats", h.GetStats)
}
