package vectorindex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/integration/common"
	pkghttp "github.com/NielsFilter/learnai/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// PineconeIndex stores chunk records in a Pinecone index. Record ids are
// "{projectId}/{filename}#{chunkIndex}" and metadata carries everything needed
// to reconstruct a retrieval hit without a second lookup.
type PineconeIndex struct {
	config    config.VectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewPineconeIndex(cfg config.VectorConfig, logger *zap.Logger) *PineconeIndex {
	return &PineconeIndex{
		connector: common.NewBaseConnector(
			cfg.IndexHost,
			cfg.RequestTimeout,
			logger,
			pkghttp.WithHeaderToken("Api-Key", cfg.APIKey),
		),
		config: cfg,
		logger: logger,
	}
}

type vector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type upsertRequest struct {
	Vectors   []vector `json:"vectors"`
	Namespace string   `json:"namespace,omitempty"`
}

type upsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}

type queryRequest struct {
	Namespace       string         `json:"namespace,omitempty"`
	Vector          []float32      `json:"vector"`
	TopK            int            `json:"topK"`
	Filter          map[string]any `json:"filter,omitempty"`
	IncludeValues   bool           `json:"includeValues"`
	IncludeMetadata bool           `json:"includeMetadata"`
}

type queryMatch struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

type queryResponse struct {
	Matches []queryMatch `json:"matches"`
}

type deleteRequest struct {
	Filter    map[string]any `json:"filter,omitempty"`
	Namespace string         `json:"namespace,omitempty"`
}

func (p *PineconeIndex) apiVersion() pkghttp.RequestOpt {
	return pkghttp.WithHeader("X-Pinecone-Api-Version", p.config.APIVersion)
}

// Upsert writes chunk records in a single bulk call.
func (p *PineconeIndex) Upsert(ctx context.Context, chunks []entity.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	vectors := make([]vector, 0, len(chunks))
	for _, ch := range chunks {
		vectors = append(vectors, vector{
			ID:     fmt.Sprintf("%s/%s#%d", ch.ProjectID, ch.Filename, ch.ChunkIndex),
			Values: ch.Vector,
			Metadata: map[string]any{
				"text":        ch.Text,
				"source":      ch.Filename,
				"projectId":   ch.ProjectID,
				"chunk_index": ch.ChunkIndex,
			},
		})
	}

	ctxzap.Info(ctx, "upserting chunk vectors", zap.Int("vector_count", len(vectors)))

	var resp upsertResponse
	err := p.connector.DoRequest(ctx, http.MethodPost, "/vectors/upsert", upsertRequest{
		Vectors:   vectors,
		Namespace: p.config.Namespace,
	}, &resp, p.apiVersion())
	if err != nil {
		ctxzap.Error(ctx, "vector upsert failed", zap.Error(err))
		return fmt.Errorf("upsert vectors: %w", err)
	}

	return nil
}

// Query returns the topK most similar chunks within a single project,
// descending by score.
func (p *PineconeIndex) Query(ctx context.Context, projectID string, queryVector []float32, topK int) ([]entity.ScoredChunk, error) {
	var resp queryResponse
	err := p.connector.DoRequest(ctx, http.MethodPost, "/query", queryRequest{
		Namespace: p.config.Namespace,
		Vector:    queryVector,
		TopK:      topK,
		Filter: map[string]any{
			"projectId": map[string]any{"$eq": projectID},
		},
		IncludeMetadata: true,
	}, &resp, p.apiVersion())
	if err != nil {
		ctxzap.Error(ctx, "vector query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", entity.ErrRetrievalFailed, err)
	}

	chunks := make([]entity.ScoredChunk, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		chunks = append(chunks, entity.ScoredChunk{
			Text:   metadataString(m.Metadata, "text"),
			Source: metadataString(m.Metadata, "source"),
			Score:  m.Score,
		})
	}

	return chunks, nil
}

// DeleteByFile removes every chunk record of one document.
func (p *PineconeIndex) DeleteByFile(ctx context.Context, projectID, filename string) error {
	return p.deleteByFilter(ctx, map[string]any{
		"projectId": map[string]any{"$eq": projectID},
		"source":    map[string]any{"$eq": filename},
	})
}

// DeleteByProject removes every chunk record of a project.
func (p *PineconeIndex) DeleteByProject(ctx context.Context, projectID string) error {
	return p.deleteByFilter(ctx, map[string]any{
		"projectId": map[string]any{"$eq": projectID},
	})
}

func (p *PineconeIndex) deleteByFilter(ctx context.Context, filter map[string]any) error {
	err := p.connector.DoRequest(ctx, http.MethodPost, "/vectors/delete", deleteRequest{
		Filter:    filter,
		Namespace: p.config.Namespace,
	}, nil, p.apiVersion())
	if err != nil {
		ctxzap.Error(ctx, "vector delete failed", zap.Error(err))
		return fmt.Errorf("delete vectors: %w", err)
	}
	return nil
}

func metadataString(md map[string]any, key string) string {
	if md == nil {
		return ""
	}
	if s, ok := md[key].(string); ok {
		return s
	}
	return ""
}
