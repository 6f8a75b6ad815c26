package song

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// Searcher is the retrieval engine surface lyric generation needs.
type Searcher interface {
	Search(ctx context.Context, projectID, query string, limit int) ([]entity.ScoredChunk, error)
}

// Completer produces a chat completion.
type Completer interface {
	Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error)
}

// AudioGenerator turns a prompt into audio bytes.
type AudioGenerator interface {
	GenerateAudio(ctx context.Context, prompt string) ([]byte, error)
}

// BlobStore holds generated song audio.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
