package ingest

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// Embedder turns texts into vectors, one per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer produces a chat completion.
type Completer interface {
	Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error)
}

// LayoutAnalyzer extracts text from binary document formats.
type LayoutAnalyzer interface {
	AnalyzeDocument(ctx context.Context, content []byte, contentType string) (string, error)
}

// VectorIndex is the chunk record sink.
type VectorIndex interface {
	Upsert(ctx context.Context, chunks []entity.Chunk) error
	DeleteByFile(ctx context.Context, projectID, filename string) error
}

// DocumentRepository persists per-file metadata.
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *entity.Document) error
}

// LifecycleTracker moves a project through the processing lifecycle.
type LifecycleTracker interface {
	CompleteProcessing(ctx context.Context, projectID string) (*entity.Project, error)
}
