package song

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers song routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/songs/lyrics", h.GenerateLyrics)
	r.Post("/songs", h.CreateSong)
	r.Get("/songs", h.ListSongs)
	r.Get("/songs/{song_id}/audio", h.GetAudio)
	r.Delete("/songs/{song_id}", h.DeleteSong)
}
