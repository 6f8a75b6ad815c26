package entity

import (
	"fmt"
	"time"
)

type ProjectStatus string

// Project status reflects the ingestion lifecycle: a project is created empty,
// enters processing whenever at least one file is mid-ingestion, and becomes
// ready once every accepted file has reported completion.
const (
	ProjectStatusCreated    ProjectStatus = "created"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusReady      ProjectStatus = "ready"
)

func (ps ProjectStatus) Validate() error {
	switch ps {
	case ProjectStatusCreated, ProjectStatusProcessing, ProjectStatusReady:
		return nil
	default:
		return fmt.Errorf("unknown project status: %s", ps)
	}
}

type Project struct {
	ID              string        `json:"id"`
	OwnerID         string        `json:"ownerId"`
	Name            string        `json:"name"`
	Subject         string        `json:"subject"`
	Status          ProjectStatus `json:"status"`
	ProcessingCount int           `json:"processingCount"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Document is the per-file metadata record. One logical row per
// (projectID, filename) pair, upserted at the end of extraction+summarization.
type Document struct {
	ProjectID  string    `json:"projectId"`
	Filename   string    `json:"filename"`
	Summary    string    `json:"summary"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Chunk is one indexed window of a document together with its embedding.
// ChunkIndex values for a (projectID, filename) pair are contiguous from 0 and
// follow the chunker's output order; Vector is the embedding of Text.
type Chunk struct {
	ProjectID  string
	Filename   string
	ChunkIndex int
	Text       string
	Vector     []float32
}

// ScoredChunk is a retrieval hit, ordered by descending similarity.
type ScoredChunk struct {
	Text   string  `json:"text"`
	Source string  `json:"source"`
	Score  float64 `json:"score"`
}

type ChatEntry struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz questions are immutable once generated; visible only to the user who
// triggered generation.
type Quiz struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"projectId"`
	UserID    string         `json:"userId"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

type QuestionVerdict struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

type QuizResult struct {
	ID          string            `json:"id"`
	QuizID      string            `json:"quizId"`
	ProjectID   string            `json:"projectId"`
	UserID      string            `json:"userId"`
	Score       int               `json:"score"`
	Total       int               `json:"total"`
	Verdicts    []QuestionVerdict `json:"results"`
	SubmittedAt time.Time         `json:"submittedAt"`
}

type Song struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Genre     string    `json:"genre"`
	Prompt    string    `json:"prompt"`
	Lyrics    string    `json:"lyrics"`
	AudioURL  string    `json:"audioUrl"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is one turn handed to the completion capability.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
