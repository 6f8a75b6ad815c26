package quiz

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// Searcher is the retrieval engine surface quiz generation needs.
type Searcher interface {
	Search(ctx context.Context, projectID, query string, limit int) ([]entity.ScoredChunk, error)
}

// Completer produces a chat completion.
type Completer interface {
	Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error)
}

// ReportFormatter renders a quiz result as a downloadable document.
type ReportFormatter interface {
	Format(result *entity.QuizResult) ([]byte, error)
}
