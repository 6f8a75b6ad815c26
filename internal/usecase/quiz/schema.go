package quiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NielsFilter/learnai/internal/entity"
)

type generatedQuiz struct {
	Questions []generatedQuestion `json:"questions"`
}

type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// ParseQuestions validates model output against the quiz schema. The contract
// is strict: unknown fields, missing fields, wrong option counts or an answer
// key outside the options all fail with ErrGenerationFormat. No repair, no
// shape guessing.
func ParseQuestions(raw string) ([]entity.QuizQuestion, error) {
	raw = stripCodeFence(raw)

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var parsed generatedQuiz
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGenerationFormat, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after quiz object", entity.ErrGenerationFormat)
	}

	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", entity.ErrGenerationFormat)
	}

	questions := make([]entity.QuizQuestion, len(parsed.Questions))
	for i, q := range parsed.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d is empty", entity.ErrGenerationFormat, i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options", entity.ErrGenerationFormat, i, len(q.Options))
		}

		valid := false
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, fmt.Errorf("%w: question %d has an empty option", entity.ErrGenerationFormat, i)
			}
			if opt == q.CorrectAnswer {
				valid = true
			}
		}
		if !valid {
			return nil, fmt.Errorf("%w: question %d answer key not among options", entity.ErrGenerationFormat, i)
		}

		questions[i] = entity.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}

	return questions, nil
}

// stripCodeFence tolerates the one formatting quirk models add routinely.
// Everything inside must still match the schema exactly.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
