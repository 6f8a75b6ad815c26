package layout

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/integration/common"
	pkghttp "github.com/NielsFilter/learnai/pkg/http"
	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector talks to the layout-analysis service (Document Intelligence
// prebuilt-layout). Analysis is asynchronous: the submit call answers 202 with
// an Operation-Location header, which is then polled until the operation
// succeeds or fails.
type Connector struct {
	config    config.LayoutConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.LayoutConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(
			cfg.Endpoint,
			cfg.RequestTimeout,
			logger,
			pkghttp.WithHeaderToken("Ocp-Apim-Subscription-Key", cfg.APIKey),
		),
		config: cfg,
		logger: logger,
	}
}

type analyzeResult struct {
	Status        string `json:"status"`
	AnalyzeResult struct {
		Pages []struct {
			Lines []struct {
				Content string `json:"content"`
			} `json:"lines"`
		} `json:"pages"`
	} `json:"analyzeResult"`
}

// AnalyzeDocument submits raw document bytes for layout analysis and returns
// the extracted text, pages separated by blank lines.
func (c *Connector) AnalyzeDocument(ctx context.Context, content []byte, contentType string) (string, error) {
	endpoint := fmt.Sprintf("/documentintelligence/documentModels/prebuilt-layout:analyze?api-version=%s",
		c.config.APIVersion)

	ctxzap.Info(ctx, "submitting document for layout analysis",
		zap.Int("content_bytes", len(content)),
		zap.String("content_type", contentType),
	)

	headers, err := c.connector.DoBinaryRequest(ctx, http.MethodPost, endpoint, content, contentType, nil)
	if err != nil {
		ctxzap.Error(ctx, "layout analysis submit failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", entity.ErrExtractionFailed, err)
	}

	operationURL := headers.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("%w: missing Operation-Location header", entity.ErrExtractionFailed)
	}

	result, err := c.pollOperation(ctx, operationURL)
	if err != nil {
		return "", err
	}

	return joinPages(result), nil
}

func (c *Connector) pollOperation(ctx context.Context, operationURL string) (*analyzeResult, error) {
	var result analyzeResult

	err := retry.Do(func() error {
		if err := c.connector.DoRequest(ctx, http.MethodGet, "", nil, &result, pkghttp.WithURL(operationURL)); err != nil {
			return retry.Unrecoverable(err)
		}

		switch result.Status {
		case "succeeded":
			return nil
		case "failed":
			return retry.Unrecoverable(fmt.Errorf("analysis reported failure"))
		default:
			return fmt.Errorf("analysis still %s", result.Status)
		}
	}, append(c.config.Poll.ToRetryOptions(), retry.Context(ctx))...)

	if err != nil {
		ctxzap.Error(ctx, "layout analysis polling failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", entity.ErrExtractionFailed, err)
	}

	return &result, nil
}

func joinPages(result *analyzeResult) string {
	var pages []string
	for _, page := range result.AnalyzeResult.Pages {
		var lines []string
		for _, line := range page.Lines {
			lines = append(lines, line.Content)
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n\n")
}
