package chat

import (
	"encoding/json"
	"net/http"

	"github.com/NielsFilter/learnai/internal/api/middleware"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/response"
)

type Handler struct {
	usecase ChatUsecase
}

func NewHandler(usecase ChatUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Ask handles POST /chat
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == "" {
		response.Error(w, http.StatusBadRequest, "projectId is required")
		return
	}

	answer, err := h.usecase.Ask(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.ChatResponse{Answer: answer})
}

// History handles GET /chat?projectId=
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ChatHistory")

	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		response.Error(w, http.StatusBadRequest, "projectId is required")
		return
	}

	history, err := h.usecase.History(ctx, middleware.UserID(ctx), projectID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.ChatHistoryResponse{History: history})
}
