package quiz

import (
	"context"
	"testing"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProjectRepo struct {
	project *entity.Project
}

func (s *stubProjectRepo) Create(ctx context.Context, project entity.Project) (*entity.Project, error) {
	return nil, nil
}

func (s *stubProjectRepo) Get(ctx context.Context, id string) (*entity.Project, error) {
	if s.project == nil || s.project.ID != id {
		return nil, entity.ErrProjectNotFound
	}
	return s.project, nil
}

func (s *stubProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Project, error) {
	return nil, nil
}

func (s *stubProjectRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubProjectRepo) BeginProcessing(ctx context.Context, id string) (*entity.Project, error) {
	return s.project, nil
}

func (s *stubProjectRepo) CompleteProcessing(ctx context.Context, id string) (*entity.Project, error) {
	return s.project, nil
}

type stubQuizRepo struct {
	quizzes map[string]*entity.Quiz
	results map[string]*entity.QuizResult
}

func newStubQuizRepo() *stubQuizRepo {
	return &stubQuizRepo{
		quizzes: make(map[string]*entity.Quiz),
		results: make(map[string]*entity.QuizResult),
	}
}

func (s *stubQuizRepo) CreateQuiz(ctx context.Context, quiz *entity.Quiz) error {
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *stubQuizRepo) GetQuiz(ctx context.Context, id string) (*entity.Quiz, error) {
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, entity.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *stubQuizRepo) CreateResult(ctx context.Context, result *entity.QuizResult) error {
	s.results[result.ID] = result
	return nil
}

func (s *stubQuizRepo) GetResult(ctx context.Context, id string) (*entity.QuizResult, error) {
	result, ok := s.results[id]
	if !ok {
		return nil, entity.ErrQuizNotFound
	}
	return result, nil
}

func (s *stubQuizRepo) ListResultsByUser(ctx context.Context, userID string) ([]*entity.QuizResult, error) {
	var out []*entity.QuizResult
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubQuizRepo) DeleteByProject(ctx context.Context, projectID string) error { return nil }

type stubSearcher struct {
	chunks []entity.ScoredChunk
	err    error
}

func (s *stubSearcher) Search(ctx context.Context, projectID, query string, limit int) ([]entity.ScoredChunk, error) {
	return s.chunks, s.err
}

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error) {
	return s.reply, s.err
}

type stubFormatter struct{}

func (stubFormatter) Format(result *entity.QuizResult) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func newQuizUsecase(quizRepo *stubQuizRepo, searcher Searcher, completer Completer) *QuizUsecase {
	projectRepo := &stubProjectRepo{project: &entity.Project{
		ID:      "p1",
		OwnerID: "u1",
		Name:    "Biology",
		Subject: "Cells",
	}}
	return NewUsecase(projectRepo, quizRepo, searcher, completer, stubFormatter{}, zap.NewNop())
}

func TestGenerate_PersistsSchemaValidQuiz(t *testing.T) {
	quizRepo := newStubQuizRepo()
	searcher := &stubSearcher{chunks: []entity.ScoredChunk{{Text: "cells divide by mitosis", Source: "bio.txt"}}}
	uc := newQuizUsecase(quizRepo, searcher, &stubCompleter{reply: validQuizJSON})

	quiz, err := uc.Generate(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", quiz.ProjectID)
	assert.Equal(t, "u1", quiz.UserID)
	require.Len(t, quiz.Questions, 1)
	assert.Contains(t, quizRepo.quizzes, quiz.ID)
}

func TestGenerate_NoIndexedDocuments(t *testing.T) {
	uc := newQuizUsecase(newStubQuizRepo(), &stubSearcher{}, &stubCompleter{reply: validQuizJSON})

	_, err := uc.Generate(context.Background(), "u1", "p1")

	assert.ErrorIs(t, err, entity.ErrNoDocumentsIndexed)
}

func TestGenerate_MalformedModelOutputIsRejected(t *testing.T) {
	quizRepo := newStubQuizRepo()
	searcher := &stubSearcher{chunks: []entity.ScoredChunk{{Text: "material"}}}
	uc := newQuizUsecase(quizRepo, searcher, &stubCompleter{reply: "here are some questions for you"})

	_, err := uc.Generate(context.Background(), "u1", "p1")

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
	assert.Empty(t, quizRepo.quizzes)
}

func TestGenerate_OtherUsersProjectIsDenied(t *testing.T) {
	searcher := &stubSearcher{chunks: []entity.ScoredChunk{{Text: "material"}}}
	uc := newQuizUsecase(newStubQuizRepo(), searcher, &stubCompleter{reply: validQuizJSON})

	_, err := uc.Generate(context.Background(), "intruder", "p1")

	assert.ErrorIs(t, err, entity.ErrAccessDenied)
}

func storedQuiz(t *testing.T, repo *stubQuizRepo) *entity.Quiz {
	t.Helper()
	quiz := &entity.Quiz{
		ID:        "q1",
		ProjectID: "p1",
		UserID:    "u1",
		Questions: []entity.QuizQuestion{
			{Question: "1+1?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: "2", Explanation: "arithmetic"},
			{Question: "2+2?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "4", Explanation: "arithmetic"},
		},
	}
	require.NoError(t, repo.CreateQuiz(context.Background(), quiz))
	return quiz
}

func TestSubmit_GradesAnswers(t *testing.T) {
	quizRepo := newStubQuizRepo()
	storedQuiz(t, quizRepo)
	uc := newQuizUsecase(quizRepo, &stubSearcher{}, &stubCompleter{})

	result, err := uc.Submit(context.Background(), "u1", &entity.SubmitQuizRequest{
		QuizID:  "q1",
		Answers: []string{"2", "5"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Verdicts, 2)
	assert.True(t, result.Verdicts[0].IsCorrect)
	assert.False(t, result.Verdicts[1].IsCorrect)
	assert.Equal(t, "4", result.Verdicts[1].CorrectAnswer)
	assert.Contains(t, quizRepo.results, result.ID)
}

func TestSubmit_TrimsWhitespaceBeforeGrading(t *testing.T) {
	quizRepo := newStubQuizRepo()
	storedQuiz(t, quizRepo)
	uc := newQuizUsecase(quizRepo, &stubSearcher{}, &stubCompleter{})

	result, err := uc.Submit(context.Background(), "u1", &entity.SubmitQuizRequest{
		QuizID:  "q1",
		Answers: []string{" 2 ", "4"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
}

func TestSubmit_AnswerCountMustMatch(t *testing.T) {
	quizRepo := newStubQuizRepo()
	storedQuiz(t, quizRepo)
	uc := newQuizUsecase(quizRepo, &stubSearcher{}, &stubCompleter{})

	_, err := uc.Submit(context.Background(), "u1", &entity.SubmitQuizRequest{
		QuizID:  "q1",
		Answers: []string{"2"},
	})

	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestSubmit_OtherUsersQuizIsDenied(t *testing.T) {
	quizRepo := newStubQuizRepo()
	storedQuiz(t, quizRepo)
	uc := newQuizUsecase(quizRepo, &stubSearcher{}, &stubCompleter{})

	_, err := uc.Submit(context.Background(), "intruder", &entity.SubmitQuizRequest{
		QuizID:  "q1",
		Answers: []string{"2", "4"},
	})

	assert.ErrorIs(t, err, entity.ErrAccessDenied)
}

func TestReport_OtherUsersResultIsDenied(t *testing.T) {
	quizRepo := newStubQuizRepo()
	require.NoError(t, quizRepo.CreateResult(context.Background(), &entity.QuizResult{
		ID:     "r1",
		UserID: "u1",
	}))
	uc := newQuizUsecase(quizRepo, &stubSearcher{}, &stubCompleter{})

	_, err := uc.Report(context.Background(), "intruder", "r1")

	assert.ErrorIs(t, err, entity.ErrAccessDenied)
}
