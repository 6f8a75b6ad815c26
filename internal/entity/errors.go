package entity

import "errors"

// Domain errors
var (
	// Ownership / lookup errors
	ErrProjectNotFound  = errors.New("project not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrSongNotFound     = errors.New("song not found")
	ErrAccessDenied     = errors.New("access denied")

	// Auth errors. Missing and invalid tokens are distinct on purpose so the
	// middleware can answer differently for each.
	ErrMissingToken = errors.New("authorization token missing")
	ErrInvalidToken = errors.New("invalid authorization token")

	// Ingestion pipeline errors
	ErrExtractionFailed        = errors.New("document extraction failed")
	ErrEmptyDocument           = errors.New("document contains no extractable text")
	ErrEmbeddingNotConfigured  = errors.New("embedding deployment not configured")
	ErrEmbeddingFailed         = errors.New("embedding service failed")
	ErrRetrievalFailed         = errors.New("vector search failed")
	ErrGenerationFailed        = errors.New("generation failed")
	ErrGenerationFormat        = errors.New("generation output does not match expected schema")
	ErrBlockedMessage          = errors.New("message rejected by guardrail")
	ErrNoDocumentsIndexed      = errors.New("no documents indexed for project")

	// File errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
