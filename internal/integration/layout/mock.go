package layout

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector stands in for the layout-analysis service when mocks are
// enabled. It never fails and returns a fixed passage so the rest of the
// pipeline has text to chunk.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) AnalyzeDocument(ctx context.Context, content []byte, contentType string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] analyzing document layout",
		zap.Int("content_bytes", len(content)),
		zap.String("content_type", contentType),
	)

	return fmt.Sprintf("Mock extracted text for a %d byte %s document.\n\n"+
		"This passage simulates the output of layout analysis so that chunking, "+
		"embedding and indexing can be exercised without the external service.",
		len(content), contentType), nil
}
