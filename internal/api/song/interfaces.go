package song

import (
	"context"

	"github.com/NielsFilter/learnai/internal/entity"
)

// SongUsecase is the business logic surface behind the song handlers.
type SongUsecase interface {
	GenerateLyrics(ctx context.Context, userID string, req *entity.GenerateLyricsRequest) (string, error)
	CreateSong(ctx context.Context, userID string, req *entity.CreateSongRequest) (*entity.Song, error)
	ListSongs(ctx context.Context, userID, projectID string) ([]*entity.Song, error)
	GetAudio(ctx context.Context, userID, songID string) ([]byte, error)
	DeleteSong(ctx context.Context, userID, songID string) error
}
