package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Extractor turns uploaded bytes into plain text. Plain-text files are decoded
// locally; every other supported format goes through layout analysis.
type Extractor struct {
	layout LayoutAnalyzer
}

func NewExtractor(layout LayoutAnalyzer) *Extractor {
	return &Extractor{layout: layout}
}

// Extract returns the document's text. A document whose extracted text is
// blank yields ErrEmptyDocument; a layout-analysis failure yields
// ErrExtractionFailed.
func (e *Extractor) Extract(ctx context.Context, filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	if ext == ".txt" {
		text = decodeText(content)
	} else {
		contentType, ok := contentTypes[ext]
		if !ok {
			contentType = "application/octet-stream"
		}

		analyzed, err := e.layout.AnalyzeDocument(ctx, content, contentType)
		if err != nil {
			ctxzap.Error(ctx, "layout analysis failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
			return "", err
		}
		text = analyzed
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", entity.ErrEmptyDocument, filename)
	}

	return text, nil
}

// decodeText never fails: valid UTF-8 passes through untouched, anything else
// is read as Latin-1 where every byte maps to a code point.
func decodeText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}

	runes := make([]rune, len(content))
	for i, b := range content {
		runes[i] = rune(b)
	}
	return string(runes)
}
