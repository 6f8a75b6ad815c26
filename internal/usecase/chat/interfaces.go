package chat

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// Searcher is the retrieval engine surface the chat flow needs.
type Searcher interface {
	Search(ctx context.Context, projectID, query string, limit int) ([]entity.ScoredChunk, error)
}

// Completer produces a chat completion.
type Completer interface {
	Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error)
}
