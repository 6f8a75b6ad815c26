package ingest

import (
	"context"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// SummaryUnavailable is stored when summary generation fails. Ingestion keeps
// going: a missing summary is a cosmetic gap, not a broken document.
const SummaryUnavailable = "Summary generation failed. You can regenerate it from the document view."

// summaryInputLimit bounds how much document text is handed to the model.
const summaryInputLimit = 100_000

const summaryInstruction = "You are a study assistant. Summarize the following study material " +
	"as short structured markdown: a one-paragraph overview followed by a bulleted " +
	"list of the key concepts. Keep it under 300 words."

// Summarizer produces a short markdown summary of a document.
type Summarizer struct {
	completer Completer
}

func NewSummarizer(completer Completer) *Summarizer {
	return &Summarizer{completer: completer}
}

// Summarize never fails: on completion errors it logs and returns the
// SummaryUnavailable sentinel.
func (s *Summarizer) Summarize(ctx context.Context, filename, text string) string {
	if len(text) > summaryInputLimit {
		text = text[:summaryInputLimit]
	}

	summary, err := s.completer.Complete(ctx, []entity.Message{
		{Role: "system", Content: summaryInstruction},
		{Role: "user", Content: fmt.Sprintf("Document: %s\n\n%s", filename, text)},
	}, 0.3)
	if err != nil {
		ctxzap.Warn(ctx, "summary generation failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return SummaryUnavailable
	}

	return summary
}
