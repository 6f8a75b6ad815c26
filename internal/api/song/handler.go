package song

import (
	"encoding/json"
	"net/http"

	"github.com/NielsFilter/learnai/internal/api/middleware"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/response"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	usecase SongUsecase
}

func NewHandler(usecase SongUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GenerateLyrics handles POST /songs/lyrics
func (h *Handler) GenerateLyrics(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateLyrics")

	var req entity.GenerateLyricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == "" {
		response.Error(w, http.StatusBadRequest, "projectId is required")
		return
	}

	lyrics, err := h.usecase.GenerateLyrics(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.GenerateLyricsResponse{Lyrics: lyrics})
}

// CreateSong handles POST /songs
func (h *Handler) CreateSong(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateSong")

	var req entity.CreateSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == "" {
		response.Error(w, http.StatusBadRequest, "projectId is required")
		return
	}

	song, err := h.usecase.CreateSong(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Created(w, song)
}

// ListSongs handles GET /songs?projectId=
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListSongs")

	projectID := r.URL.Query().Get("projectId")
	if projectID == "" {
		response.Error(w, http.StatusBadRequest, "projectId is required")
		return
	}

	songs, err := h.usecase.ListSongs(ctx, middleware.UserID(ctx), projectID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.ListSongsResponse{Songs: songs})
}

// GetAudio handles GET /songs/{song_id}/audio
func (h *Handler) GetAudio(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetSongAudio")
	songID := chi.URLParam(r, "song_id")

	audio, err := h.usecase.GetAudio(ctx, middleware.UserID(ctx), songID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

// DeleteSong handles DELETE /songs/{song_id}
func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteSong")
	songID := chi.URLParam(r, "song_id")

	if err := h.usecase.DeleteSong(ctx, middleware.UserID(ctx), songID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}
