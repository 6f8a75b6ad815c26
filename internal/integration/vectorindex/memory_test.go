package vectorindex

import (
	"context"
	"testing"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIndex_UpsertReplacesBySlot(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []entity.Chunk{
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 0, Text: "old", Vector: []float32{1, 0}},
	}))
	require.NoError(t, index.Upsert(ctx, []entity.Chunk{
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 0, Text: "new", Vector: []float32{1, 0}},
	}))

	assert.Equal(t, 1, index.Count("p1"))

	hits, err := index.Query(ctx, "p1", []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "new", hits[0].Text)
}

func TestMemoryIndex_DeleteByFileKeepsOtherFiles(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []entity.Chunk{
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 0, Text: "a0", Vector: []float32{1, 0}},
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 1, Text: "a1", Vector: []float32{1, 0}},
		{ProjectID: "p1", Filename: "b.txt", ChunkIndex: 0, Text: "b0", Vector: []float32{0, 1}},
	}))

	require.NoError(t, index.DeleteByFile(ctx, "p1", "a.txt"))

	assert.Equal(t, 1, index.Count("p1"))
	hits, err := index.Query(ctx, "p1", []float32{0, 1}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "b.txt", hits[0].Source)
}

func TestMemoryIndex_DeleteByProjectIsScoped(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []entity.Chunk{
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 0, Vector: []float32{1, 0}},
		{ProjectID: "p2", Filename: "c.txt", ChunkIndex: 0, Vector: []float32{1, 0}},
	}))

	require.NoError(t, index.DeleteByProject(ctx, "p1"))

	assert.Equal(t, 0, index.Count("p1"))
	assert.Equal(t, 1, index.Count("p2"))
}

func TestMemoryIndex_QueryHonorsTopK(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []entity.Chunk{
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 0, Vector: []float32{1, 0}},
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 1, Vector: []float32{0.9, 0.1}},
		{ProjectID: "p1", Filename: "a.txt", ChunkIndex: 2, Vector: []float32{0, 1}},
	}))

	hits, err := index.Query(ctx, "p1", []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}
