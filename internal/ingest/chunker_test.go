package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunker_ShortTextSingleChunk(t *testing.T) {
	c := NewChunker()

	chunks := c.Split("a short document")

	require.Len(t, chunks, 1)
	assert.Equal(t, "a short document", chunks[0])
}

func TestChunker_Deterministic(t *testing.T) {
	c := NewChunker()
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200)

	first := c.Split(text)
	second := c.Split(text)

	assert.Equal(t, first, second)
}

func TestChunker_RespectsSizeBound(t *testing.T) {
	c := NewChunker()
	text := strings.Repeat("Sentence one is here. Sentence two follows it. ", 300)

	chunks := c.Split(text)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), defaultChunkSize, "chunk %d exceeds size", i)
		assert.NotEmpty(t, chunk)
	}
}

func TestChunker_AdjacentChunksOverlap(t *testing.T) {
	c := NewChunkerWithSize(100, 20)

	words := make([]string, 200)
	for i := range words {
		words[i] = fmt.Sprintf("w%03d", i)
	}
	text := strings.Join(words, " ")

	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	for i := 0; i < len(chunks)-1; i++ {
		firstOfNext := strings.Fields(chunks[i+1])[0]
		assert.Contains(t, chunks[i], firstOfNext,
			"chunk %d should carry a tail of chunk %d", i+1, i)
	}
}

func TestChunker_HardCutWithoutSeparators(t *testing.T) {
	c := NewChunker()
	text := strings.Repeat("x", 2500)

	chunks := c.Split(text)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[1], 1000)
	assert.Len(t, chunks[2], 900)
	// stride is size-overlap, so each chunk starts 800 into the previous one
	assert.Equal(t, chunks[0][800:], chunks[1][:200])
}

func TestChunker_PrefersParagraphBoundaries(t *testing.T) {
	c := NewChunkerWithSize(50, 10)
	text := "first paragraph here\n\nsecond paragraph here\n\nthird paragraph here"

	chunks := c.Split(text)

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 50)
	}
	assert.Contains(t, chunks[0], "first paragraph")
}

func TestChunker_DropsBlankChunks(t *testing.T) {
	c := NewChunker()

	chunks := c.Split("   \n\n   \n   ")

	assert.Empty(t, chunks)
}
