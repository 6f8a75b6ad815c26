package project

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/validator"
	"github.com/NielsFilter/learnai/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ProjectUsecase implements project business logic
type ProjectUsecase struct {
	projectRepo  repository.ProjectRepository
	documentRepo repository.DocumentRepository
	chatRepo     repository.ChatRepository
	quizRepo     repository.QuizRepository
	songRepo     repository.SongRepository
	index        VectorIndex
	docsStore    BlobStore
	songsStore   BlobStore
	ingestor     Ingestor
	validator    *validator.Validator
	logger       *zap.Logger
}

func NewUsecase(
	projectRepo repository.ProjectRepository,
	documentRepo repository.DocumentRepository,
	chatRepo repository.ChatRepository,
	quizRepo repository.QuizRepository,
	songRepo repository.SongRepository,
	index VectorIndex,
	docsStore BlobStore,
	songsStore BlobStore,
	ingestor Ingestor,
	fileValidator *validator.Validator,
	logger *zap.Logger,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo:  projectRepo,
		documentRepo: documentRepo,
		chatRepo:     chatRepo,
		quizRepo:     quizRepo,
		songRepo:     songRepo,
		index:        index,
		docsStore:    docsStore,
		songsStore:   songsStore,
		ingestor:     ingestor,
		validator:    fileValidator,
		logger:       logger,
	}
}

// CreateProject creates an empty project owned by the caller.
func (uc *ProjectUsecase) CreateProject(ctx context.Context, userID string, req *entity.CreateProjectRequest) (*entity.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name", entity.ErrMissingField)
	}

	project, err := uc.projectRepo.Create(ctx, entity.Project{
		ID:      uuid.New().String(),
		OwnerID: userID,
		Name:    req.Name,
		Subject: req.Subject,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	ctxzap.Info(ctx, "project created",
		zap.String("project_id", project.ID),
		zap.String("name", project.Name),
	)

	return project, nil
}

// ListProjects returns the caller's projects.
func (uc *ProjectUsecase) ListProjects(ctx context.Context, userID string) ([]*entity.Project, error) {
	return uc.projectRepo.ListByOwner(ctx, userID)
}

// GetProject returns one project, enforcing ownership.
func (uc *ProjectUsecase) GetProject(ctx context.Context, userID, projectID string) (*entity.Project, error) {
	return uc.getOwned(ctx, userID, projectID)
}

// DeleteProject removes the project and everything hanging off it: blobs,
// chunk records, metadata, transcripts, quizzes, songs. Failures on
// individual branches are logged and the cascade keeps going, so a flaky
// external store can't strand the relational rows.
func (uc *ProjectUsecase) DeleteProject(ctx context.Context, userID, projectID string) error {
	if _, err := uc.getOwned(ctx, userID, projectID); err != nil {
		return err
	}

	if err := uc.docsStore.DeletePrefix(ctx, projectID+"/"); err != nil {
		ctxzap.Error(ctx, "delete project blobs failed", zap.Error(err))
	}
	if err := uc.songsStore.DeletePrefix(ctx, projectID+"/"); err != nil {
		ctxzap.Error(ctx, "delete project song audio failed", zap.Error(err))
	}
	if err := uc.index.DeleteByProject(ctx, projectID); err != nil {
		ctxzap.Error(ctx, "delete project chunk records failed", zap.Error(err))
	}
	if err := uc.documentRepo.DeleteByProject(ctx, projectID); err != nil {
		ctxzap.Error(ctx, "delete project documents failed", zap.Error(err))
	}
	if err := uc.chatRepo.DeleteByProject(ctx, projectID); err != nil {
		ctxzap.Error(ctx, "delete project chat entries failed", zap.Error(err))
	}
	if err := uc.quizRepo.DeleteByProject(ctx, projectID); err != nil {
		ctxzap.Error(ctx, "delete project quizzes failed", zap.Error(err))
	}
	if err := uc.songRepo.DeleteByProject(ctx, projectID); err != nil {
		ctxzap.Error(ctx, "delete project songs failed", zap.Error(err))
	}

	if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	ctxzap.Info(ctx, "project deleted", zap.String("project_id", projectID))
	return nil
}

// UploadDocument accepts one file for ingestion: validates it, clears any
// previous chunk records for the same filename, stores the blob and claims a
// processing slot. The heavy pipeline runs afterwards via ProcessDocument.
func (uc *ProjectUsecase) UploadDocument(ctx context.Context, userID, projectID, filename string, content []byte) (string, error) {
	if _, err := uc.getOwned(ctx, userID, projectID); err != nil {
		return "", err
	}

	if err := uc.validator.ValidateUpload(filename, int64(len(content))); err != nil {
		return "", err
	}
	filename = validator.SanitizeFilename(filename)

	// Re-uploads replace: stale chunks must not survive next to new ones.
	if err := uc.index.DeleteByFile(ctx, projectID, filename); err != nil {
		ctxzap.Warn(ctx, "clearing previous chunk records failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
	}

	key := projectID + "/" + filename
	if err := uc.docsStore.Put(ctx, key, content, contentTypeFor(filename)); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	if _, err := uc.projectRepo.BeginProcessing(ctx, projectID); err != nil {
		return "", fmt.Errorf("claim processing slot: %w", err)
	}

	ctxzap.Info(ctx, "upload accepted",
		zap.String("project_id", projectID),
		zap.String("filename", filename),
		zap.Int("size", len(content)),
	)

	return filename, nil
}

// ProcessDocument runs the ingestion pipeline for an accepted upload.
func (uc *ProjectUsecase) ProcessDocument(ctx context.Context, projectID, filename string, content []byte) error {
	return uc.ingestor.ProcessDocument(ctx, projectID, filename, content)
}

func (uc *ProjectUsecase) getOwned(ctx context.Context, userID, projectID string) (*entity.Project, error) {
	project, err := uc.projectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != userID {
		return nil, entity.ErrAccessDenied
	}
	return project, nil
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
