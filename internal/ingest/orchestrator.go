package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Orchestrator runs the ingestion pipeline for one uploaded document:
// extract, summarize, chunk, embed, write, then report completion on the
// project lifecycle. It is triggered once per uploaded object.
type Orchestrator struct {
	extractor  *Extractor
	summarizer *Summarizer
	chunker    *Chunker
	embedder   Embedder
	index      VectorIndex
	documents  DocumentRepository
	lifecycle  LifecycleTracker
}

func NewOrchestrator(
	extractor *Extractor,
	summarizer *Summarizer,
	chunker *Chunker,
	embedder Embedder,
	index VectorIndex,
	documents DocumentRepository,
	lifecycle LifecycleTracker,
) *Orchestrator {
	return &Orchestrator{
		extractor:  extractor,
		summarizer: summarizer,
		chunker:    chunker,
		embedder:   embedder,
		index:      index,
		documents:  documents,
		lifecycle:  lifecycle,
	}
}

// ProcessDocument ingests one uploaded file. An empty document is terminal
// but not a failure: the lifecycle still completes with zero chunks written.
// Extraction, embedding and index-write failures propagate WITHOUT completing
// the lifecycle, leaving the project visibly stuck in processing.
func (o *Orchestrator) ProcessDocument(ctx context.Context, projectID, filename string, content []byte) error {
	logger := ctxzap.Extract(ctx).With(
		zap.String("project_id", projectID),
		zap.String("filename", filename),
	)
	ctx = ctxzap.ToContext(ctx, logger)
	started := time.Now()

	ctxzap.Info(ctx, "ingestion started", zap.Int("content_bytes", len(content)))

	text, err := o.extractor.Extract(ctx, filename, content)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyDocument) {
			ctxzap.Warn(ctx, "document has no extractable text, completing with zero chunks")
			return o.complete(ctx, projectID)
		}
		ctxzap.Error(ctx, "extraction failed", zap.Error(err))
		return fmt.Errorf("extract %s: %w", filename, err)
	}

	summary := o.summarizer.Summarize(ctx, filename, text)

	if err := o.documents.Upsert(ctx, &entity.Document{
		ProjectID:  projectID,
		Filename:   filename,
		Summary:    summary,
		UploadedAt: time.Now().UTC(),
	}); err != nil {
		ctxzap.Error(ctx, "document metadata upsert failed", zap.Error(err))
		return fmt.Errorf("upsert document %s: %w", filename, err)
	}

	texts := o.chunker.Split(text)
	if len(texts) == 0 {
		ctxzap.Warn(ctx, "chunker produced no chunks, completing")
		return o.complete(ctx, projectID)
	}

	vectors, err := o.embedder.Embed(ctx, texts)
	if err != nil {
		ctxzap.Error(ctx, "embedding failed", zap.Error(err))
		return fmt.Errorf("embed %s: %w", filename, err)
	}

	chunks := make([]entity.Chunk, len(texts))
	for i := range texts {
		chunks[i] = entity.Chunk{
			ProjectID:  projectID,
			Filename:   filename,
			ChunkIndex: i,
			Text:       texts[i],
			Vector:     vectors[i],
		}
	}

	if err := o.index.Upsert(ctx, chunks); err != nil {
		ctxzap.Error(ctx, "chunk index write failed", zap.Error(err))
		return fmt.Errorf("index %s: %w", filename, err)
	}

	ctxzap.Info(ctx, "ingestion finished",
		zap.Int("chunk_count", len(chunks)),
		zap.Duration("duration", time.Since(started)),
	)

	return o.complete(ctx, projectID)
}

func (o *Orchestrator) complete(ctx context.Context, projectID string) error {
	project, err := o.lifecycle.CompleteProcessing(ctx, projectID)
	if err != nil {
		ctxzap.Error(ctx, "lifecycle completion failed", zap.Error(err))
		return fmt.Errorf("complete processing: %w", err)
	}

	ctxzap.Info(ctx, "processing slot released",
		zap.Int("remaining", project.ProcessingCount),
		zap.String("project_status", string(project.Status)),
	)
	return nil
}
