package stats

import (
	"context"
	"net/http"

	"github.com/NielsFilter/learnai/internal/api/middleware"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/response"
)

// StatsUsecase is the business logic surface behind the stats handler.
type StatsUsecase interface {
	GetStats(ctx context.Context, userID string) (*entity.StatsResponse, error)
}

type Handler struct {
	usecase StatsUsecase
}

func NewHandler(usecase StatsUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GetStats handles GET /stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetStats")

	stats, err := h.usecase.GetStats(ctx, middleware.UserID(ctx))
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, stats)
}
