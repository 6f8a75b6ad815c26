package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SongRepository defines the interface for song persistence
type SongRepository interface {
	Create(ctx context.Context, song *entity.Song) error
	Get(ctx context.Context, id string) (*entity.Song, error)
	ListByProjectAndUser(ctx context.Context, projectID, userID string) ([]*entity.Song, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

var _ SongRepository = &SongPostgres{}

// SongPostgres implements SongRepository using PostgreSQL
type SongPostgres struct {
	db *pgxpool.Pool
}

func NewSongPostgres(db *pgxpool.Pool) *SongPostgres {
	return &SongPostgres{db: db}
}

const songColumns = "id, project_id, user_id, title, genre, prompt, lyrics, audio_url, status, created_at"

func scanSong(row pgx.Row) (*entity.Song, error) {
	var s entity.Song
	err := row.Scan(&s.ID, &s.ProjectID, &s.UserID, &s.Title, &s.Genre,
		&s.Prompt, &s.Lyrics, &s.AudioURL, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SongPostgres) Create(ctx context.Context, song *entity.Song) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO songs (`+songColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		song.ID, song.ProjectID, song.UserID, song.Title, song.Genre,
		song.Prompt, song.Lyrics, song.AudioURL, song.Status, song.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create song: %w", err)
	}
	return nil
}

func (r *SongPostgres) Get(ctx context.Context, id string) (*entity.Song, error) {
	song, err := scanSong(r.db.QueryRow(ctx,
		"SELECT "+songColumns+" FROM songs WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSongNotFound
		}
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

func (r *SongPostgres) ListByProjectAndUser(ctx context.Context, projectID, userID string) ([]*entity.Song, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+songColumns+" FROM songs WHERE project_id = $1 AND user_id = $2 ORDER BY created_at DESC",
		projectID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	songs := make([]*entity.Song, 0)
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	return songs, nil
}

func (r *SongPostgres) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM songs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSongNotFound
	}
	return nil
}

func (r *SongPostgres) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM songs WHERE project_id = $1", projectID)
	if err != nil {
		return fmt.Errorf("delete project songs: %w", err)
	}
	return nil
}
