package document

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// DocumentUsecase is the business logic surface behind the document handlers.
type DocumentUsecase interface {
	ListDocuments(ctx context.Context, userID, projectID string) ([]*entity.Document, error)
	DeleteDocument(ctx context.Context, userID, projectID, filename string) error
	RegenerateSummary(ctx context.Context, userID, projectID, filename string) (string, error)
}
