package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/repository"
	"github.com/NielsFilter/learnai/internal/retrieval"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const tutorPrompt = "You are a patient tutor helping a student learn from their own study material. " +
	"Answer using ONLY the provided context. If the context does not contain the answer, " +
	"say so instead of guessing. Explain clearly and encourage the student."

const chatTemperature = 0.7

// ChatUsecase implements the RAG chat flow
type ChatUsecase struct {
	projectRepo repository.ProjectRepository
	chatRepo    repository.ChatRepository
	searcher    Searcher
	completer   Completer
	logger      *zap.Logger
}

func NewUsecase(
	projectRepo repository.ProjectRepository,
	chatRepo repository.ChatRepository,
	searcher Searcher,
	completer Completer,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		projectRepo: projectRepo,
		chatRepo:    chatRepo,
		searcher:    searcher,
		completer:   completer,
		logger:      logger,
	}
}

// Ask answers one question grounded in the project's indexed material and
// appends the exchange to the transcript.
func (uc *ChatUsecase) Ask(ctx context.Context, userID string, req *entity.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message", entity.ErrMissingField)
	}

	if err := uc.checkOwnership(ctx, userID, req.ProjectID); err != nil {
		return "", err
	}

	if err := retrieval.CheckMessage(req.Message); err != nil {
		ctxzap.Warn(ctx, "message blocked by guardrail", zap.String("project_id", req.ProjectID))
		return "", err
	}

	chunks, err := uc.searcher.Search(ctx, req.ProjectID, req.Message, 0)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", entity.ErrNoDocumentsIndexed
	}

	// Best evidence first, exactly as retrieval ranked it.
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}
	contextBlock := strings.Join(texts, "\n\n")

	answer, err := uc.completer.Complete(ctx, []entity.Message{
		{Role: "system", Content: tutorPrompt},
		{Role: "user", Content: fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextBlock, req.Message)},
	}, chatTemperature)
	if err != nil {
		return "", err
	}

	entry := &entity.ChatEntry{
		ID:        uuid.New().String(),
		ProjectID: req.ProjectID,
		UserID:    userID,
		Message:   req.Message,
		Answer:    answer,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.chatRepo.Append(ctx, entry); err != nil {
		ctxzap.Error(ctx, "appending chat entry failed", zap.Error(err))
	}

	ctxzap.Info(ctx, "chat answered",
		zap.String("project_id", req.ProjectID),
		zap.Int("evidence_count", len(chunks)),
	)
	return answer, nil
}

// History returns the caller's transcript for a project, oldest first.
func (uc *ChatUsecase) History(ctx context.Context, userID, projectID string) ([]*entity.ChatEntry, error) {
	if err := uc.checkOwnership(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListByProjectAndUser(ctx, projectID, userID)
}

func (uc *ChatUsecase) checkOwnership(ctx context.Context, userID, projectID string) error {
	project, err := uc.projectRepo.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != userID {
		return entity.ErrAccessDenied
	}
	return nil
}
