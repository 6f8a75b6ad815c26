package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository defines the interface for document metadata persistence
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *entity.Document) error
	Get(ctx context.Context, projectID, filename string) (*entity.Document, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Document, error)
	Delete(ctx context.Context, projectID, filename string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

var _ DocumentRepository = &DocumentPostgres{}

// DocumentPostgres implements DocumentRepository using PostgreSQL.
// One logical row per (project_id, filename); re-uploads overwrite in place.
type DocumentPostgres struct {
	db *pgxpool.Pool
}

func NewDocumentPostgres(db *pgxpool.Pool) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

func (r *DocumentPostgres) Upsert(ctx context.Context, doc *entity.Document) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO documents (project_id, filename, summary, uploaded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id, filename)
		DO UPDATE SET summary = EXCLUDED.summary, uploaded_at = EXCLUDED.uploaded_at`,
		doc.ProjectID, doc.Filename, doc.Summary, doc.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (r *DocumentPostgres) Get(ctx context.Context, projectID, filename string) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.QueryRow(ctx, `
		SELECT project_id, filename, summary, uploaded_at
		FROM documents WHERE project_id = $1 AND filename = $2`,
		projectID, filename,
	).Scan(&doc.ProjectID, &doc.Filename, &doc.Summary, &doc.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (r *DocumentPostgres) ListByProject(ctx context.Context, projectID string) ([]*entity.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT project_id, filename, summary, uploaded_at
		FROM documents WHERE project_id = $1
		ORDER BY uploaded_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]*entity.Document, 0)
	for rows.Next() {
		var doc entity.Document
		if err := rows.Scan(&doc.ProjectID, &doc.Filename, &doc.Summary, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

func (r *DocumentPostgres) Delete(ctx context.Context, projectID, filename string) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM documents WHERE project_id = $1 AND filename = $2", projectID, filename)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentPostgres) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM documents WHERE project_id = $1", projectID)
	if err != nil {
		return fmt.Errorf("delete project documents: %w", err)
	}
	return nil
}
