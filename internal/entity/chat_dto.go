package entity

// ChatRequest is the payload for POST /chat
type ChatRequest struct {
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type ChatHistoryResponse struct {
	History []*ChatEntry `json:"history"`
}
