package document

import (
	"net/http"
	"net/url"

	"github.com/NielsFilter/learnai/internal/api/middleware"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/response"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	usecase DocumentUsecase
}

func NewHandler(usecase DocumentUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// ListDocuments handles GET /projects/{project_id}/documents
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListDocuments")
	projectID := chi.URLParam(r, "project_id")

	docs, err := h.usecase.ListDocuments(ctx, middleware.UserID(ctx), projectID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.ListDocumentsResponse{Documents: docs})
}

// DeleteDocument handles DELETE /projects/{project_id}/documents/{filename}
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteDocument")
	projectID := chi.URLParam(r, "project_id")

	filename, err := pathFilename(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid filename")
		return
	}

	if err := h.usecase.DeleteDocument(ctx, middleware.UserID(ctx), projectID, filename); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

// RegenerateSummary handles POST /projects/{project_id}/documents/{filename}/summary
func (h *Handler) RegenerateSummary(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RegenerateSummary")
	projectID := chi.URLParam(r, "project_id")

	filename, err := pathFilename(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid filename")
		return
	}

	summary, err := h.usecase.RegenerateSummary(ctx, middleware.UserID(ctx), projectID, filename)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.RegenerateSummaryResponse{Summary: summary})
}

func pathFilename(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "filename"))
}
