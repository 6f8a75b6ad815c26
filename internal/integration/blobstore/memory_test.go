package blobstore

import (
	"context"
	"testing"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data := []byte("hello")
	require.NoError(t, s.Put(ctx, "p1/notes.txt", data, "text/plain"))

	// mutating the caller's slice must not affect the stored copy
	data[0] = 'X'

	got, err := s.Get(ctx, "p1/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "p1/missing.txt")

	assert.ErrorIs(t, err, entity.ErrDocumentNotFound)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "p1/a.txt", []byte("a"), "text/plain"))
	require.NoError(t, s.Delete(ctx, "p1/a.txt"))
	require.NoError(t, s.Delete(ctx, "p1/a.txt"))

	_, err := s.Get(ctx, "p1/a.txt")
	assert.ErrorIs(t, err, entity.ErrDocumentNotFound)
}

func TestMemoryStore_DeletePrefixAndList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "p1/b.txt", []byte("b"), "text/plain"))
	require.NoError(t, s.Put(ctx, "p1/a.txt", []byte("a"), "text/plain"))
	require.NoError(t, s.Put(ctx, "p2/c.txt", []byte("c"), "text/plain"))

	keys, err := s.List(ctx, "p1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1/a.txt", "p1/b.txt"}, keys)

	require.NoError(t, s.DeletePrefix(ctx, "p1/"))

	keys, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2/c.txt"}, keys)
}
