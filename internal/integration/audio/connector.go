package audio

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

// Connector generates short audio clips from a text prompt via the ElevenLabs
// sound-generation API. The response is raw mp3 bytes.
type Connector struct {
	config    config.AudioConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.AudioConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(
			cfg.Endpoint,
			cfg.RequestTimeout,
			logger,
			pkghttp.WithHeaderToken("xi-api-key", cfg.APIKey),
		),
		config: cfg,
		logger: logger,
	}
}

type soundRequest struct {
	Text            string `json:"text"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// GenerateAudio turns a prompt into an mp3 clip.
func (c *Connector) GenerateAudio(ctx context.Context, prompt string) ([]byte, error) {
	ctxzap.Info(ctx, "requesting audio generation", zap.Int("prompt_length", len(prompt)))

	data, err := c.connector.DoRawRequest(ctx, http.MethodPost, "/v1/sound-generation", soundRequest{
		Text:            prompt,
		DurationSeconds: c.config.DurationSeconds,
	})
	if err != nil {
		ctxzap.Error(ctx, "audio generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty audio response", entity.ErrGenerationFailed)
	}

	return data, nil
}
