package document

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers document routes under the project prefix.
// The upload route lives with the project handlers.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/projects/{project_id}/documents", h.ListDocuments)
	r.Delete("/projects/{project_id}/documents/{filename}", h.DeleteDocument)
	r.Post("/projects/{project_id}/documents/{filename}/summary", h.RegenerateSummary)
}
