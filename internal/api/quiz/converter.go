package quiz

import (
	"github.com/NielsFilter/learnai/internal/entity"
)

// toGenerateResponse strips the answer keys before the quiz leaves the server.
func toGenerateResponse(quiz *entity.Quiz) *entity.GenerateQuizResponse {
	questions := make([]entity.ClientQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = entity.ClientQuestion{
			Question: q.Question,
			Options:  q.Options,
		}
	}

	return &entity.GenerateQuizResponse{
		QuizID:    quiz.ID,
		Questions: questions,
	}
}

func toSubmitResponse(result *entity.QuizResult) *entity.SubmitQuizResponse {
	return &entity.SubmitQuizResponse{
		Score:    result.Score,
		Total:    result.Total,
		Verdicts: result.Verdicts,
	}
}
