package entity

// GenerateQuizRequest is the payload for POST /quiz/generate
type GenerateQuizRequest struct {
	ProjectID string `json:"projectId"`
}

// ClientQuestion is a quiz question with the answer key stripped.
type ClientQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type GenerateQuizResponse struct {
	QuizID    string           `json:"quizId"`
	Questions []ClientQuestion `json:"questions"`
}

// SubmitQuizRequest carries the selected option text per question, in question order.
type SubmitQuizRequest struct {
	QuizID  string   `json:"quizId"`
	Answers []string `json:"answers"`
}

type SubmitQuizResponse struct {
	Score    int               `json:"score"`
	Total    int               `json:"total"`
	Verdicts []QuestionVerdict `json:"results"`
}

// StatsResponse aggregates a user's quiz history
type StatsResponse struct {
	History      []*QuizResult `json:"history"`
	AverageScore float64       `json:"averageScore"`
	TotalQuizzes int           `json:"totalQuizzes"`
}
