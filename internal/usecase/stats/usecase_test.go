package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubQuizRepo struct {
	results []*entity.QuizResult
	err     error
}

func (s *stubQuizRepo) CreateQuiz(ctx context.Context, quiz *entity.Quiz) error { return nil }

func (s *stubQuizRepo) GetQuiz(ctx context.Context, id string) (*entity.Quiz, error) {
	return nil, entity.ErrQuizNotFound
}

func (s *stubQuizRepo) CreateResult(ctx context.Context, result *entity.QuizResult) error {
	return nil
}

func (s *stubQuizRepo) GetResult(ctx context.Context, id string) (*entity.QuizResult, error) {
	return nil, entity.ErrQuizNotFound
}

func (s *stubQuizRepo) ListResultsByUser(ctx context.Context, userID string) ([]*entity.QuizResult, error) {
	return s.results, s.err
}

func (s *stubQuizRepo) DeleteByProject(ctx context.Context, projectID string) error { return nil }

func TestGetStats_AveragesScorePercentages(t *testing.T) {
	repo := &stubQuizRepo{results: []*entity.QuizResult{
		{ID: "r1", Score: 5, Total: 5},
		{ID: "r2", Score: 1, Total: 2},
	}}
	uc := NewUsecase(repo, zap.NewNop())

	stats, err := uc.GetStats(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalQuizzes)
	assert.InDelta(t, 75.0, stats.AverageScore, 0.001)
	assert.Len(t, stats.History, 2)
}

func TestGetStats_EmptyHistory(t *testing.T) {
	uc := NewUsecase(&stubQuizRepo{}, zap.NewNop())

	stats, err := uc.GetStats(context.Background(), "u1")

	require.NoError(t, err)
	assert.Zero(t, stats.TotalQuizzes)
	assert.Zero(t, stats.AverageScore)
}

func TestGetStats_SkipsZeroTotalResults(t *testing.T) {
	repo := &stubQuizRepo{results: []*entity.QuizResult{
		{ID: "r1", Score: 0, Total: 0},
		{ID: "r2", Score: 3, Total: 4},
	}}
	uc := NewUsecase(repo, zap.NewNop())

	stats, err := uc.GetStats(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalQuizzes)
	assert.InDelta(t, 75.0, stats.AverageScore, 0.001)
}

func TestGetStats_RepositoryErrorPropagates(t *testing.T) {
	wantErr := errors.New("db down")
	uc := NewUsecase(&stubQuizRepo{err: wantErr}, zap.NewNop())

	_, err := uc.GetStats(context.Background(), "u1")

	assert.ErrorIs(t, err, wantErr)
}
