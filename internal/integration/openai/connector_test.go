package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConnector(t *testing.T, handler http.HandlerFunc) *Connector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewConnector(config.OpenAIConfig{
		Endpoint:        srv.URL,
		APIKey:          "test-key",
		APIVersion:      "2024-12-01-preview",
		ChatDeployment:  "gpt-35-turbo",
		EmbedDeployment: "text-embedding-ada-002",
		RequestTimeout:  5 * time.Second,
	}, zap.NewNop())
}

func TestConnector_EmbedReordersByIndex(t *testing.T) {
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		// data deliberately out of input order
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 1, "embedding": []float32{0, 1}},
				{"index": 0, "embedding": []float32{1, 0}},
			},
		})
	})

	vectors, err := c.Embed(context.Background(), []string{"first", "second"})

	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{1, 0}, vectors[0])
	assert.Equal(t, []float32{0, 1}, vectors[1])
}

func TestConnector_EmbedCountMismatchFails(t *testing.T) {
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": []float32{1, 0}},
			},
		})
	})

	_, err := c.Embed(context.Background(), []string{"first", "second"})

	assert.ErrorIs(t, err, entity.ErrEmbeddingFailed)
}

func TestConnector_EmbedDuplicateIndexFails(t *testing.T) {
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": []float32{1, 0}},
				{"index": 0, "embedding": []float32{0, 1}},
			},
		})
	})

	_, err := c.Embed(context.Background(), []string{"first", "second"})

	assert.ErrorIs(t, err, entity.ErrEmbeddingFailed)
}

func TestConnector_EmbedServerErrorWrapsSentinel(t *testing.T) {
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})

	_, err := c.Embed(context.Background(), []string{"first"})

	assert.ErrorIs(t, err, entity.ErrEmbeddingFailed)
}

func TestConnector_EmbedWithoutDeploymentIsNotConfigured(t *testing.T) {
	called := false
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	c.config.EmbedDeployment = ""

	_, err := c.Embed(context.Background(), []string{"first"})

	assert.ErrorIs(t, err, entity.ErrEmbeddingNotConfigured)
	assert.False(t, called, "no request should be sent when embeddings are not configured")
}

func TestConnector_EmbedEmptyInputSkipsRequest(t *testing.T) {
	called := false
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	vectors, err := c.Embed(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, vectors)
	assert.False(t, called)
}

func TestConnector_CompleteReturnsFirstChoice(t *testing.T) {
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 0.7, req.Temperature)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "the answer"}},
				{"message": map[string]string{"content": "ignored"}},
			},
		})
	})

	reply, err := c.Complete(context.Background(), []entity.Message{
		{Role: "user", Content: "a question"},
	}, 0.7)

	require.NoError(t, err)
	assert.Equal(t, "the answer", reply)
}

func TestConnector_CompleteEmptyChoicesFails(t *testing.T) {
	c := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := c.Complete(context.Background(), []entity.Message{{Role: "user", Content: "q"}}, 0)

	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
}
