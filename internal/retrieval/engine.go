package retrieval

import (
	"context"
	"fmt"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Embedder turns texts into vectors, one per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorSearcher runs a similarity query scoped to one project.
type VectorSearcher interface {
	Query(ctx context.Context, projectID string, vector []float32, topK int) ([]entity.ScoredChunk, error)
}

// Engine answers "which indexed chunks are most similar to this query" for a
// single project. One embedding call, one similarity query, no fallbacks: a
// retrieval failure surfaces instead of silently answering ungrounded.
type Engine struct {
	embedder Embedder
	searcher VectorSearcher
	cfg      config.RetrievalConfig
}

func NewEngine(embedder Embedder, searcher VectorSearcher, cfg config.RetrievalConfig) *Engine {
	return &Engine{
		embedder: embedder,
		searcher: searcher,
		cfg:      cfg,
	}
}

// Search returns up to limit chunks in descending similarity order. A limit
// of 0 uses the configured default. The index is queried for a wider
// candidate pool and truncated, so the limit never degrades ranking quality.
func (e *Engine) Search(ctx context.Context, projectID, query string, limit int) ([]entity.ScoredChunk, error) {
	if limit <= 0 {
		limit = e.cfg.TopK
	}

	vectors, err := e.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("%w: expected 1 query vector, got %d", entity.ErrRetrievalFailed, len(vectors))
	}

	pool := e.cfg.NumCandidates
	if pool < limit {
		pool = limit
	}

	chunks, err := e.searcher.Query(ctx, projectID, vectors[0], pool)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}

	if len(chunks) > limit {
		chunks = chunks[:limit]
	}

	ctxzap.Debug(ctx, "retrieval finished",
		zap.String("project_id", projectID),
		zap.Int("hit_count", len(chunks)),
	)

	return chunks, nil
}
