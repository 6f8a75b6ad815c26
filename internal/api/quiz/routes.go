package quiz

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers quiz routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/quiz/generate", h.Generate)
	r.Post("/quiz/submit", h.Submit)
	r.Get("/quiz/results/{result_id}/report", h.Report)
}
