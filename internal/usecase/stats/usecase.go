package stats

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/repository"
	"go.uber.org/zap"
)

// StatsUsecase aggregates a user's quiz history
type StatsUsecase struct {
	quizRepo repository.QuizRepository
	logger   *zap.Logger
}

func NewUsecase(quizRepo repository.QuizRepository, logger *zap.Logger) *StatsUsecase {
	return &StatsUsecase{
		quizRepo: quizRepo,
		logger:   logger,
	}
}

// GetStats returns the caller's quiz results oldest-first along with the
// average score percentage across all submissions.
func (uc *StatsUsecase) GetStats(ctx context.Context, userID string) (*entity.StatsResponse, error) {
	results, err := uc.quizRepo.ListResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sum float64
	counted := 0
	for _, r := range results {
		if r.Total > 0 {
			sum += float64(r.Score) / float64(r.Total) * 100
			counted++
		}
	}

	avg := 0.0
	if counted > 0 {
		avg = sum / float64(counted)
	}

	return &entity.StatsResponse{
		History:      results,
		AverageScore: avg,
		TotalQuizzes: len(results),
	}, nil
}
