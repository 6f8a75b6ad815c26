package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/integration/vectorindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axisEmbedder maps known phrases onto fixed unit vectors, making the cosine
// ranking of the memory index fully predictable.
type axisEmbedder struct {
	err  error
	axes map[string][]float32
}

func (a *axisEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if a.err != nil {
		return nil, a.err
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := a.axes[text]; ok {
			vectors[i] = v
		} else {
			vectors[i] = []float32{1, 1, 1}
		}
	}
	return vectors, nil
}

func testEngineConfig() config.RetrievalConfig {
	return config.RetrievalConfig{TopK: 2, NumCandidates: 10}
}

func seedIndex(t *testing.T) *vectorindex.MemoryIndex {
	t.Helper()
	index := vectorindex.NewMemoryIndex()
	err := index.Upsert(context.Background(), []entity.Chunk{
		{ProjectID: "p1", Filename: "bio.txt", ChunkIndex: 0, Text: "cells divide", Vector: []float32{1, 0, 0}},
		{ProjectID: "p1", Filename: "bio.txt", ChunkIndex: 1, Text: "plants photosynthesize", Vector: []float32{0.9, 0.1, 0}},
		{ProjectID: "p1", Filename: "history.txt", ChunkIndex: 0, Text: "the revolution began", Vector: []float32{0, 1, 0}},
		{ProjectID: "p2", Filename: "other.txt", ChunkIndex: 0, Text: "unrelated project", Vector: []float32{1, 0, 0}},
	})
	require.NoError(t, err)
	return index
}

func TestEngine_RanksByDescendingSimilarity(t *testing.T) {
	embedder := &axisEmbedder{axes: map[string][]float32{
		"biology": {1, 0, 0},
	}}
	engine := NewEngine(embedder, seedIndex(t), testEngineConfig())

	hits, err := engine.Search(context.Background(), "p1", "biology", 3)

	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "cells divide", hits[0].Text)
	assert.Equal(t, "plants photosynthesize", hits[1].Text)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
	}
}

func TestEngine_ScopesToProject(t *testing.T) {
	embedder := &axisEmbedder{axes: map[string][]float32{
		"anything": {1, 0, 0},
	}}
	engine := NewEngine(embedder, seedIndex(t), testEngineConfig())

	hits, err := engine.Search(context.Background(), "p2", "anything", 10)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "unrelated project", hits[0].Text)
}

func TestEngine_ZeroLimitUsesConfiguredDefault(t *testing.T) {
	embedder := &axisEmbedder{axes: map[string][]float32{}}
	engine := NewEngine(embedder, seedIndex(t), testEngineConfig())

	hits, err := engine.Search(context.Background(), "p1", "anything", 0)

	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestEngine_TruncatesToLimit(t *testing.T) {
	embedder := &axisEmbedder{axes: map[string][]float32{}}
	engine := NewEngine(embedder, seedIndex(t), testEngineConfig())

	hits, err := engine.Search(context.Background(), "p1", "anything", 1)

	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestEngine_EmptyProjectReturnsNoHits(t *testing.T) {
	engine := NewEngine(&axisEmbedder{}, vectorindex.NewMemoryIndex(), testEngineConfig())

	hits, err := engine.Search(context.Background(), "p1", "anything", 5)

	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestEngine_EmbedFailurePropagates(t *testing.T) {
	wantErr := errors.New("embedding service down")
	engine := NewEngine(&axisEmbedder{err: wantErr}, seedIndex(t), testEngineConfig())

	_, err := engine.Search(context.Background(), "p1", "anything", 5)

	assert.ErrorIs(t, err, wantErr)
}
