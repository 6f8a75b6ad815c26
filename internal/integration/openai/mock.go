package openai

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"math"
	"strings"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const mockVectorDim = 256

// MockConnector is the in-process language model used when mocks are enabled.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Embed returns a deterministic pseudo-vector per text so that identical texts
// always land on identical vectors and the in-memory index stays searchable.
func (m *MockConnector) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	ctxzap.Info(ctx, "[MOCK] embedding texts", zap.Int("input_count", len(texts)))

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = mockEmbedding(text)
	}
	return vectors, nil
}

// Complete answers with canned content. Prompts that ask for a quiz get back
// schema-conforming JSON so that downstream parsing works in mock mode too.
func (m *MockConnector) Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion", zap.Int("message_count", len(messages)))

	var prompt string
	for _, msg := range messages {
		prompt += strings.ToLower(msg.Content) + "\n"
	}

	if strings.Contains(prompt, "quiz") || strings.Contains(prompt, "multiple-choice") {
		return mockQuizJSON()
	}
	if strings.Contains(prompt, "lyrics") || strings.Contains(prompt, "song") {
		return "Verse 1:\nFacts in a row, ready to go,\nlearning the things we need to know.\n\nChorus:\nStudy it twice, say it out loud,\nknowledge will make you proud.", nil
	}

	return "This is a mock answer based on the provided study material.", nil
}

func mockQuizJSON() (string, error) {
	questions := []entity.QuizQuestion{
		{
			Question:      "What is the primary purpose of the study material?",
			Options:       []string{"Learning", "Entertainment", "Navigation", "Cooking"},
			CorrectAnswer: "Learning",
			Explanation:   "The material exists to support learning.",
		},
		{
			Question:      "Which action improves retention the most?",
			Options:       []string{"Skimming once", "Active recall", "Ignoring notes", "Reading backwards"},
			CorrectAnswer: "Active recall",
			Explanation:   "Testing yourself strengthens memory.",
		},
		{
			Question:      "When should summaries be revisited?",
			Options:       []string{"Never", "Only before exams", "Regularly", "Once a year"},
			CorrectAnswer: "Regularly",
			Explanation:   "Spaced repetition beats cramming.",
		},
	}

	data, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// mockEmbedding seeds a small PRNG from the text so the output is stable
// across processes and restarts.
func mockEmbedding(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	vec := make([]float32, mockVectorDim)
	var norm float64
	for i := range vec {
		// xorshift64
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		v := float32(int64(state%2000)-1000) / 1000.0
		vec[i] = v
		norm += float64(v) * float64(v)
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec
}
