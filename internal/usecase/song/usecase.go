package song

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	lyricsTemperature = 0.9

	// lyricsEvidenceCount keeps the lyric prompt focused on a handful of facts.
	lyricsEvidenceCount = 5
)

const lyricsInstruction = "You write short, catchy educational songs. Using the provided study " +
	"material, write lyrics (two verses and a chorus) that teach the key facts. Match the " +
	"requested genre. Return only the lyrics."

// SongUsecase implements study-song generation and playback
type SongUsecase struct {
	projectRepo repository.ProjectRepository
	songRepo    repository.SongRepository
	searcher    Searcher
	completer   Completer
	audio       AudioGenerator
	songsStore  BlobStore
	logger      *zap.Logger
}

func NewUsecase(
	projectRepo repository.ProjectRepository,
	songRepo repository.SongRepository,
	searcher Searcher,
	completer Completer,
	audio AudioGenerator,
	songsStore BlobStore,
	logger *zap.Logger,
) *SongUsecase {
	return &SongUsecase{
		projectRepo: projectRepo,
		songRepo:    songRepo,
		searcher:    searcher,
		completer:   completer,
		audio:       audio,
		songsStore:  songsStore,
		logger:      logger,
	}
}

// GenerateLyrics writes lyrics grounded in the project's indexed material.
func (uc *SongUsecase) GenerateLyrics(ctx context.Context, userID string, req *entity.GenerateLyricsRequest) (string, error) {
	if err := uc.checkOwnership(ctx, userID, req.ProjectID); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("%w: prompt", entity.ErrMissingField)
	}

	chunks, err := uc.searcher.Search(ctx, req.ProjectID, req.Prompt, lyricsEvidenceCount)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", entity.ErrNoDocumentsIndexed
	}

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}

	lyrics, err := uc.completer.Complete(ctx, []entity.Message{
		{Role: "system", Content: lyricsInstruction},
		{Role: "user", Content: fmt.Sprintf("Genre: %s\nTopic: %s\n\nStudy material:\n%s",
			req.Genre, req.Prompt, strings.Join(texts, "\n\n"))},
	}, lyricsTemperature)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "lyrics generated",
		zap.String("project_id", req.ProjectID),
		zap.String("genre", req.Genre),
	)
	return lyrics, nil
}

// CreateSong composes audio for the given lyrics, stores it and persists the
// song record.
func (uc *SongUsecase) CreateSong(ctx context.Context, userID string, req *entity.CreateSongRequest) (*entity.Song, error) {
	if err := uc.checkOwnership(ctx, userID, req.ProjectID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Lyrics) == "" {
		return nil, fmt.Errorf("%w: lyrics", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title", entity.ErrMissingField)
	}

	songID := uuid.New().String()

	audioPrompt := req.Lyrics
	if req.Genre != "" {
		audioPrompt = fmt.Sprintf("A %s song:\n%s", req.Genre, req.Lyrics)
	}

	audioBytes, err := uc.audio.GenerateAudio(ctx, audioPrompt)
	if err != nil {
		return nil, err
	}

	key := req.ProjectID + "/" + songID + ".mp3"
	if err := uc.songsStore.Put(ctx, key, audioBytes, "audio/mpeg"); err != nil {
		return nil, fmt.Errorf("store song audio: %w", err)
	}

	song := &entity.Song{
		ID:        songID,
		ProjectID: req.ProjectID,
		UserID:    userID,
		Title:     req.Title,
		Genre:     req.Genre,
		Prompt:    req.Prompt,
		Lyrics:    req.Lyrics,
		AudioURL:  "/api/v1/songs/" + songID + "/audio",
		Status:    "ready",
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.songRepo.Create(ctx, song); err != nil {
		return nil, fmt.Errorf("persist song: %w", err)
	}

	ctxzap.Info(ctx, "song created",
		zap.String("song_id", songID),
		zap.String("project_id", req.ProjectID),
		zap.Int("audio_bytes", len(audioBytes)),
	)
	return song, nil
}

// ListSongs returns the caller's songs within a project.
func (uc *SongUsecase) ListSongs(ctx context.Context, userID, projectID string) ([]*entity.Song, error) {
	if err := uc.checkOwnership(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return uc.songRepo.ListByProjectAndUser(ctx, projectID, userID)
}

// GetAudio streams a song's stored audio to its owner.
func (uc *SongUsecase) GetAudio(ctx context.Context, userID, songID string) ([]byte, error) {
	song, err := uc.getOwnedSong(ctx, userID, songID)
	if err != nil {
		return nil, err
	}
	return uc.songsStore.Get(ctx, song.ProjectID+"/"+song.ID+".mp3")
}

// DeleteSong removes the song row and its stored audio.
func (uc *SongUsecase) DeleteSong(ctx context.Context, userID, songID string) error {
	song, err := uc.getOwnedSong(ctx, userID, songID)
	if err != nil {
		return err
	}

	if err := uc.songsStore.Delete(ctx, song.ProjectID+"/"+song.ID+".mp3"); err != nil {
		ctxzap.Error(ctx, "delete song audio failed", zap.Error(err))
	}

	if err := uc.songRepo.Delete(ctx, songID); err != nil {
		return fmt.Errorf("delete song: %w", err)
	}

	ctxzap.Info(ctx, "song deleted", zap.String("song_id", songID))
	return nil
}

func (uc *SongUsecase) getOwnedSong(ctx context.Context, userID, songID string) (*entity.Song, error) {
	song, err := uc.songRepo.Get(ctx, songID)
	if err != nil {
		return nil, err
	}
	if song.UserID != userID {
		return nil, entity.ErrAccessDenied
	}
	return song, nil
}

func (uc *SongUsecase) checkOwnership(ctx context.Context, userID, projectID string) error {
	project, err := uc.projectRepo.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != userID {
		return entity.ErrAccessDenied
	}
	return nil
}
