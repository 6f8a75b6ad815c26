package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Error writes an error envelope
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// Success writes a 200 OK response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes a 201 Created response
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Accepted writes a 202 Accepted response for work that continues in the background
func Accepted(w http.ResponseWriter, data any) {
	JSON(w, http.StatusAccepted, data)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// UsecaseError logs err and maps domain sentinels to HTTP statuses. Upstream
// capability failures (extraction, embedding, retrieval, generation) answer
// 502 so callers can tell "you asked wrong" from "a dependency broke".
func UsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "request failed", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrProjectNotFound),
		errors.Is(err, entity.ErrDocumentNotFound),
		errors.Is(err, entity.ErrQuizNotFound),
		errors.Is(err, entity.ErrSongNotFound):
		Error(w, http.StatusNotFound, "resource not found")

	case errors.Is(err, entity.ErrAccessDenied):
		Error(w, http.StatusForbidden, "access denied")

	case errors.Is(err, entity.ErrMissingToken):
		Error(w, http.StatusUnauthorized, "authorization required")
	case errors.Is(err, entity.ErrInvalidToken):
		Error(w, http.StatusUnauthorized, "invalid token")

	case errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrInvalidFormat):
		Error(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrFileTooLarge),
		errors.Is(err, entity.ErrInvalidExtension):
		Error(w, http.StatusBadRequest, "invalid file")

	case errors.Is(err, entity.ErrBlockedMessage):
		Error(w, http.StatusBadRequest, "message rejected")
	case errors.Is(err, entity.ErrNoDocumentsIndexed):
		Error(w, http.StatusBadRequest, "no documents indexed for this project")

	case errors.Is(err, entity.ErrExtractionFailed),
		errors.Is(err, entity.ErrEmbeddingFailed),
		errors.Is(err, entity.ErrRetrievalFailed),
		errors.Is(err, entity.ErrGenerationFailed),
		errors.Is(err, entity.ErrGenerationFormat):
		Error(w, http.StatusBadGateway, "upstream capability failed")

	default:
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
