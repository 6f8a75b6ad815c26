package chat

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// ChatUsecase is the business logic surface behind the chat handlers.
type ChatUsecase interface {
	Ask(ctx context.Context, userID string, req *entity.ChatRequest) (string, error)
	History(ctx context.Context, userID, projectID string) ([]*entity.ChatEntry, error)
}
