package document

import (
	"context"
	"fmt"
	"time"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// DocumentUsecase implements document metadata business logic
type DocumentUsecase struct {
	projectRepo  repository.ProjectRepository
	documentRepo repository.DocumentRepository
	index        VectorIndex
	docsStore    BlobStore
	extractor    Extractor
	summarizer   Summarizer
	logger       *zap.Logger
}

func NewUsecase(
	projectRepo repository.ProjectRepository,
	documentRepo repository.DocumentRepository,
	index VectorIndex,
	docsStore BlobStore,
	extractor Extractor,
	summarizer Summarizer,
	logger *zap.Logger,
) *DocumentUsecase {
	return &DocumentUsecase{
		projectRepo:  projectRepo,
		documentRepo: documentRepo,
		index:        index,
		docsStore:    docsStore,
		extractor:    extractor,
		summarizer:   summarizer,
		logger:       logger,
	}
}

// ListDocuments returns the metadata of every ingested document in a project.
func (uc *DocumentUsecase) ListDocuments(ctx context.Context, userID, projectID string) ([]*entity.Document, error) {
	if err := uc.checkOwnership(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return uc.documentRepo.ListByProject(ctx, projectID)
}

// DeleteDocument removes one document everywhere: blob, chunk records,
// metadata row. Failures on individual branches are logged and the cascade
// keeps going.
func (uc *DocumentUsecase) DeleteDocument(ctx context.Context, userID, projectID, filename string) error {
	if err := uc.checkOwnership(ctx, userID, projectID); err != nil {
		return err
	}

	if _, err := uc.documentRepo.Get(ctx, projectID, filename); err != nil {
		return err
	}

	if err := uc.docsStore.Delete(ctx, projectID+"/"+filename); err != nil {
		ctxzap.Error(ctx, "delete document blob failed", zap.Error(err))
	}
	if err := uc.index.DeleteByFile(ctx, projectID, filename); err != nil {
		ctxzap.Error(ctx, "delete document chunk records failed", zap.Error(err))
	}

	if err := uc.documentRepo.Delete(ctx, projectID, filename); err != nil {
		return fmt.Errorf("delete document metadata: %w", err)
	}

	ctxzap.Info(ctx, "document deleted",
		zap.String("project_id", projectID),
		zap.String("filename", filename),
	)
	return nil
}

// RegenerateSummary re-runs extraction and summarization over the stored blob
// and persists the fresh summary.
func (uc *DocumentUsecase) RegenerateSummary(ctx context.Context, userID, projectID, filename string) (string, error) {
	if err := uc.checkOwnership(ctx, userID, projectID); err != nil {
		return "", err
	}

	if _, err := uc.documentRepo.Get(ctx, projectID, filename); err != nil {
		return "", err
	}

	content, err := uc.docsStore.Get(ctx, projectID+"/"+filename)
	if err != nil {
		return "", fmt.Errorf("fetch stored document: %w", err)
	}

	text, err := uc.extractor.Extract(ctx, filename, content)
	if err != nil {
		return "", err
	}

	summary := uc.summarizer.Summarize(ctx, filename, text)

	if err := uc.documentRepo.Upsert(ctx, &entity.Document{
		ProjectID:  projectID,
		Filename:   filename,
		Summary:    summary,
		UploadedAt: time.Now().UTC(),
	}); err != nil {
		return "", fmt.Errorf("persist summary: %w", err)
	}

	ctxzap.Info(ctx, "summary regenerated",
		zap.String("project_id", projectID),
		zap.String("filename", filename),
	)
	return summary, nil
}

func (uc *DocumentUsecase) checkOwnership(ctx context.Context, userID, projectID string) error {
	project, err := uc.projectRepo.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != userID {
		return entity.ErrAccessDenied
	}
	return nil
}
