package openai

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

type Connector struct {
	config    config.OpenAIConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.OpenAIConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(
			cfg.Endpoint,
			cfg.RequestTimeout,
			logger,
			pkghttp.WithHeaderToken("api-key", cfg.APIKey),
		),
		config: cfg,
		logger: logger,
	}
}

type embeddingRequest struct {
	Input []string `json:"input"`
}

type embeddingDatum struct {
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

type embeddingResponse struct {
	Data []embeddingDatum `json:"data"`
}

type chatRequest struct {
	Messages    []entity.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Embed returns one vector per input text, in input order. The service is
// allowed to return data out of order, so vectors are re-slotted by the
// reported index before returning.
func (c *Connector) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if c.config.EmbedDeployment == "" {
		return nil, entity.ErrEmbeddingNotConfigured
	}
	if len(texts) == 0 {
		return nil, nil
	}

	endpoint := fmt.Sprintf("/openai/deployments/%s/embeddings?api-version=%s",
		c.config.EmbedDeployment, c.config.APIVersion)

	ctxzap.Debug(ctx, "requesting embeddings", zap.Int("input_count", len(texts)))

	var resp embeddingResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, embeddingRequest{Input: texts}, &resp)
	if err != nil {
		ctxzap.Error(ctx, "embedding request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", entity.ErrEmbeddingFailed, err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d inputs", entity.ErrEmbeddingFailed, len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("%w: vector index %d out of range", entity.ErrEmbeddingFailed, d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	for i, v := range vectors {
		if v == nil {
			return nil, fmt.Errorf("%w: missing vector for input %d", entity.ErrEmbeddingFailed, i)
		}
	}

	return vectors, nil
}

// Complete sends a chat completion request and returns the first choice.
func (c *Connector) Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error) {
	endpoint := fmt.Sprintf("/openai/deployments/%s/chat/completions?api-version=%s",
		c.config.ChatDeployment, c.config.APIVersion)

	ctxzap.Debug(ctx, "requesting completion", zap.Int("message_count", len(messages)))

	var resp chatResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, chatRequest{
		Messages:    messages,
		Temperature: temperature,
	}, &resp)
	if err != nil {
		ctxzap.Error(ctx, "completion request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", entity.ErrGenerationFailed)
	}

	return resp.Choices[0].Message.Content, nil
}
