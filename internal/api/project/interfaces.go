package project

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// ProjectUsecase is the business logic surface behind the project handlers.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, userID string, req *entity.CreateProjectRequest) (*entity.Project, error)
	ListProjects(ctx context.Context, userID string) ([]*entity.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (*entity.Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
	UploadDocument(ctx context.Context, userID, projectID, filename string, content []byte) (string, error)
	ProcessDocument(ctx context.Context, projectID, filename string, content []byte) error
}
