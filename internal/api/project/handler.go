package project

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/NielsFilter/learnai/internal/api/middleware"
	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ProjectUsecase
	cfg     config.FileUploadConfig
}

func NewHandler(usecase ProjectUsecase, cfg config.FileUploadConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateProject")

	var req entity.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.usecase.CreateProject(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Created(w, project)
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListProjects")

	projects, err := h.usecase.ListProjects(ctx, middleware.UserID(ctx))
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.ListProjectsResponse{Projects: projects})
}

// GetProject handles GET /projects/{project_id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetProject")
	projectID := chi.URLParam(r, "project_id")

	project, err := h.usecase.GetProject(ctx, middleware.UserID(ctx), projectID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, project)
}

// DeleteProject handles DELETE /projects/{project_id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteProject")
	projectID := chi.URLParam(r, "project_id")

	if err := h.usecase.DeleteProject(ctx, middleware.UserID(ctx), projectID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

// UploadDocument handles POST /projects/{project_id}/documents.
// The upload is validated and stored synchronously; the ingestion pipeline
// runs in the background after the 202 goes out.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadDocument")
	projectID := chi.URLParam(r, "project_id")

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid form data or size too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctxzap.Error(ctx, "failed to read upload", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	filename, err := h.usecase.UploadDocument(ctx, middleware.UserID(ctx), projectID, header.Filename, content)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Accepted(w, &entity.UploadAccepted{
		Status:   "accepted",
		Filename: filename,
		Message:  "document is being processed",
	})

	// Ingest asynchronously with the request logger carried over.
	go func() {
		bgCtx := logger.WithAction(ctxzap.ToContext(context.Background(), ctxzap.Extract(ctx)), "UploadDocument-async")

		if err := h.usecase.ProcessDocument(bgCtx, projectID, filename, content); err != nil {
			ctxzap.Error(bgCtx, "background ingestion failed",
				zap.String("project_id", projectID),
				zap.String("filename", filename),
				zap.Error(err),
			)
		}
	}()
}
