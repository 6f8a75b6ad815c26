package project

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers project routes. Flat patterns: the document
// package registers further routes under the same /projects prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/projects", h.CreateProject)
	r.Get("/projects", h.ListProjects)
	r.Get("/projects/{project_id}", h.GetProject)
	r.Delete("/projects/{project_id}", h.DeleteProject)
	r.Post("/projects/{project_id}/documents", h.UploadDocument)
}
