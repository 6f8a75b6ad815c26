package repository

import (
	"context"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository defines the interface for chat transcript persistence
type ChatRepository interface {
	Append(ctx context.Context, entry *entity.ChatEntry) error
	ListByProjectAndUser(ctx context.Context, projectID, userID string) ([]*entity.ChatEntry, error)
	DeleteByProject(ctx context.Context, projectID string) error
}

var _ ChatRepository = &ChatPostgres{}

// ChatPostgres implements ChatRepository using PostgreSQL. The transcript is
// append-only; entries are never edited.
type ChatPostgres struct {
	db *pgxpool.Pool
}

func NewChatPostgres(db *pgxpool.Pool) *ChatPostgres {
	return &ChatPostgres{db: db}
}

func (r *ChatPostgres) Append(ctx context.Context, entry *entity.ChatEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_entries (id, project_id, user_id, message, answer, ts)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.ProjectID, entry.UserID, entry.Message, entry.Answer, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append chat entry: %w", err)
	}
	return nil
}

func (r *ChatPostgres) ListByProjectAndUser(ctx context.Context, projectID, userID string) ([]*entity.ChatEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, project_id, user_id, message, answer, ts
		FROM chat_entries
		WHERE project_id = $1 AND user_id = $2
		ORDER BY ts ASC`,
		projectID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chat entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.ChatEntry, 0)
	for rows.Next() {
		var e entity.ChatEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.UserID, &e.Message, &e.Answer, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chat entries: %w", err)
	}

	return entries, nil
}

func (r *ChatPostgres) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM chat_entries WHERE project_id = $1", projectID)
	if err != nil {
		return fmt.Errorf("delete project chat entries: %w", err)
	}
	return nil
}
