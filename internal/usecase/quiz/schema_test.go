package quiz

import (
	"testing"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `{
	"questions": [
		{
			"question": "What organelle produces ATP?",
			"options": ["Nucleus", "Mitochondria", "Ribosome", "Golgi apparatus"],
			"correctAnswer": "Mitochondria",
			"explanation": "Mitochondria run cellular respiration."
		}
	]
}`

func TestParseQuestions_ValidPayload(t *testing.T) {
	questions, err := ParseQuestions(validQuizJSON)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What organelle produces ATP?", questions[0].Question)
	assert.Len(t, questions[0].Options, 4)
	assert.Equal(t, "Mitochondria", questions[0].CorrectAnswer)
	assert.Equal(t, "Mitochondria run cellular respiration.", questions[0].Explanation)
}

func TestParseQuestions_ToleratesCodeFence(t *testing.T) {
	questions, err := ParseQuestions("```json\n" + validQuizJSON + "\n```")

	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestParseQuestions_RejectsUnknownFields(t *testing.T) {
	raw := `{
		"questions": [
			{
				"question": "Q?",
				"options": ["a", "b", "c", "d"],
				"correctAnswer": "a",
				"explanation": "e",
				"difficulty": "easy"
			}
		]
	}`

	_, err := ParseQuestions(raw)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}

func TestParseQuestions_RejectsWrongOptionCount(t *testing.T) {
	raw := `{
		"questions": [
			{
				"question": "Q?",
				"options": ["a", "b", "c"],
				"correctAnswer": "a",
				"explanation": "e"
			}
		]
	}`

	_, err := ParseQuestions(raw)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}

func TestParseQuestions_RejectsAnswerOutsideOptions(t *testing.T) {
	raw := `{
		"questions": [
			{
				"question": "Q?",
				"options": ["a", "b", "c", "d"],
				"correctAnswer": "A",
				"explanation": "case must match verbatim"
			}
		]
	}`

	_, err := ParseQuestions(raw)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}

func TestParseQuestions_RejectsEmptyQuestionList(t *testing.T) {
	_, err := ParseQuestions(`{"questions": []}`)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}

func TestParseQuestions_RejectsEmptyOption(t *testing.T) {
	raw := `{
		"questions": [
			{
				"question": "Q?",
				"options": ["a", "  ", "c", "d"],
				"correctAnswer": "a",
				"explanation": "e"
			}
		]
	}`

	_, err := ParseQuestions(raw)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}

func TestParseQuestions_RejectsTrailingContent(t *testing.T) {
	_, err := ParseQuestions(validQuizJSON + `{"more": true}`)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}

func TestParseQuestions_RejectsProse(t *testing.T) {
	_, err := ParseQuestions("Sure! Here is your quiz:\n" + validQuizJSON)

	assert.ErrorIs(t, err, entity.ErrGenerationFormat)
}
