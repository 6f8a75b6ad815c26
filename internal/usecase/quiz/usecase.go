package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	// quizContextLimit caps how much retrieved material is handed to the model.
	quizContextLimit = 10_000

	// quizEvidenceCount is how many chunks are pulled as generation context.
	quizEvidenceCount = 20

	quizTemperature = 0.7
)

const quizInstruction = "You are a quiz generator. Using ONLY the provided study material, produce " +
	"exactly 5 multiple-choice questions. Respond with JSON only, no prose, no code fences, " +
	`matching this shape exactly: {"questions":[{"question":"...","options":["...","...","...","..."],` +
	`"correctAnswer":"...","explanation":"..."}]}. Each question has exactly 4 options and ` +
	"correctAnswer must be one of them verbatim."

// QuizUsecase implements quiz generation, grading and reporting
type QuizUsecase struct {
	projectRepo repository.ProjectRepository
	quizRepo    repository.QuizRepository
	searcher    Searcher
	completer   Completer
	formatter   ReportFormatter
	logger      *zap.Logger
}

func NewUsecase(
	projectRepo repository.ProjectRepository,
	quizRepo repository.QuizRepository,
	searcher Searcher,
	completer Completer,
	formatter ReportFormatter,
	logger *zap.Logger,
) *QuizUsecase {
	return &QuizUsecase{
		projectRepo: projectRepo,
		quizRepo:    quizRepo,
		searcher:    searcher,
		completer:   completer,
		formatter:   formatter,
		logger:      logger,
	}
}

// Generate builds a quiz from the project's indexed material. The model
// output must conform to the question schema exactly; anything else is
// rejected with ErrGenerationFormat rather than repaired.
func (uc *QuizUsecase) Generate(ctx context.Context, userID, projectID string) (*entity.Quiz, error) {
	project, err := uc.getOwned(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	chunks, err := uc.searcher.Search(ctx, projectID, project.Name+" "+project.Subject, quizEvidenceCount)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, entity.ErrNoDocumentsIndexed
	}

	contextBlock := assembleContext(chunks, quizContextLimit)

	raw, err := uc.completer.Complete(ctx, []entity.Message{
		{Role: "system", Content: quizInstruction},
		{Role: "user", Content: "Study material:\n\n" + contextBlock},
	}, quizTemperature)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		ctxzap.Warn(ctx, "quiz generation output rejected",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return nil, err
	}

	quiz := &entity.Quiz{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.quizRepo.CreateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("persist quiz: %w", err)
	}

	ctxzap.Info(ctx, "quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.Int("question_count", len(questions)),
	)
	return quiz, nil
}

// Submit grades the caller's answers against the stored quiz and persists an
// immutable result.
func (uc *QuizUsecase) Submit(ctx context.Context, userID string, req *entity.SubmitQuizRequest) (*entity.QuizResult, error) {
	quiz, err := uc.quizRepo.GetQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz.UserID != userID {
		return nil, entity.ErrAccessDenied
	}

	if len(req.Answers) != len(quiz.Questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d",
			entity.ErrInvalidParameter, len(quiz.Questions), len(req.Answers))
	}

	verdicts := make([]entity.QuestionVerdict, len(quiz.Questions))
	score := 0
	for i, q := range quiz.Questions {
		correct := strings.TrimSpace(req.Answers[i]) == q.CorrectAnswer
		if correct {
			score++
		}
		verdicts[i] = entity.QuestionVerdict{
			Question:      q.Question,
			UserAnswer:    req.Answers[i],
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
			Explanation:   q.Explanation,
		}
	}

	result := &entity.QuizResult{
		ID:          uuid.New().String(),
		QuizID:      quiz.ID,
		ProjectID:   quiz.ProjectID,
		UserID:      userID,
		Score:       score,
		Total:       len(quiz.Questions),
		Verdicts:    verdicts,
		SubmittedAt: time.Now().UTC(),
	}
	if err := uc.quizRepo.CreateResult(ctx, result); err != nil {
		return nil, fmt.Errorf("persist quiz result: %w", err)
	}

	ctxzap.Info(ctx, "quiz submitted",
		zap.String("quiz_id", quiz.ID),
		zap.Int("score", score),
		zap.Int("total", result.Total),
	)
	return result, nil
}

// Report renders a submitted result as a PDF download.
func (uc *QuizUsecase) Report(ctx context.Context, userID, resultID string) ([]byte, error) {
	result, err := uc.quizRepo.GetResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.UserID != userID {
		return nil, entity.ErrAccessDenied
	}

	return uc.formatter.Format(result)
}

func (uc *QuizUsecase) getOwned(ctx context.Context, userID, projectID string) (*entity.Project, error) {
	project, err := uc.projectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != userID {
		return nil, entity.ErrAccessDenied
	}
	return project, nil
}

func assembleContext(chunks []entity.ScoredChunk, limit int) string {
	var b strings.Builder
	for _, chunk := range chunks {
		if b.Len()+len(chunk.Text)+2 > limit {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(chunk.Text)
	}
	return b.String()
}
