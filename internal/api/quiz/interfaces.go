package quiz

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// QuizUsecase is the business logic surface behind the quiz handlers.
type QuizUsecase interface {
	Generate(ctx context.Context, userID, projectID string) (*entity.Quiz, error)
	Submit(ctx context.Context, userID string, req *entity.SubmitQuizRequest) (*entity.QuizResult, error)
	Report(ctx context.Context, userID, resultID string) ([]byte, error)
}
