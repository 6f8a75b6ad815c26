package entity

// CreateProjectRequest is the payload for POST /projects
type CreateProjectRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// ListProjectsResponse wraps the caller's projects
type ListProjectsResponse struct {
	Projects []*Project `json:"projects"`
}

// UploadAccepted is returned while ingestion continues in the background
type UploadAccepted struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// ListDocumentsResponse wraps a project's document metadata records
type ListDocumentsResponse struct {
	Documents []*Document `json:"documents"`
}

// RegenerateSummaryResponse carries a freshly generated document summary
type RegenerateSummaryResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
