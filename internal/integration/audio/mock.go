package audio

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a tiny silent payload instead of calling the audio
// service.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) GenerateAudio(ctx context.Context, prompt string) ([]byte, error) {
	ctxzap.Info(ctx, "[MOCK] generating audio", zap.Int("prompt_length", len(prompt)))

	// ID3 header followed by padding, enough to be recognised as mp3.
	return []byte("ID3\x04\x00\x00\x00\x00\x00\x00mock-audio"), nil
}
