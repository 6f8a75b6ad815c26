package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/NielsFilter/learnai/internal/api/middleware"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/formatter"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/response"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	usecase QuizUsecase
}

func NewHandler(usecase QuizUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Generate handles POST /quiz/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateQuiz")

	var req entity.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == "" {
		response.Error(w, http.StatusBadRequest, "projectId is required")
		return
	}

	quiz, err := h.usecase.Generate(ctx, middleware.UserID(ctx), req.ProjectID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toGenerateResponse(quiz))
}

// Submit handles POST /quiz/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SubmitQuiz")

	var req entity.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizID == "" {
		response.Error(w, http.StatusBadRequest, "quizId is required")
		return
	}

	result, err := h.usecase.Submit(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSubmitResponse(result))
}

// Report handles GET /quiz/results/{result_id}/report
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "QuizReport")
	resultID := chi.URLParam(r, "result_id")

	pdf, err := h.usecase.Report(ctx, middleware.UserID(ctx), resultID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", formatter.ReportContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="quiz-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
