package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	Create(ctx context.Context, project entity.Project) (*entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Project, error)
	Delete(ctx context.Context, id string) error
	BeginProcessing(ctx context.Context, id string) (*entity.Project, error)
	CompleteProcessing(ctx context.Context, id string) (*entity.Project, error)
}

var _ ProjectRepository = &ProjectPostgres{}

// ProjectPostgres implements ProjectRepository using PostgreSQL
type ProjectPostgres struct {
	db *pgxpool.Pool
}

func NewProjectPostgres(db *pgxpool.Pool) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

const projectColumns = "id, owner_id, name, subject, status, processing_count, created_at"

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Subject, &p.Status, &p.ProcessingCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectPostgres) Create(ctx context.Context, project entity.Project) (*entity.Project, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO projects (id, owner_id, name, subject, status, processing_count)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING `+projectColumns,
		project.ID, project.OwnerID, project.Name, project.Subject, entity.ProjectStatusCreated,
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (r *ProjectPostgres) Get(ctx context.Context, id string) (*entity.Project, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

func (r *ProjectPostgres) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Project, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*entity.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (r *ProjectPostgres) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrProjectNotFound
	}
	return nil
}

// BeginProcessing claims one processing slot. Single atomic statement so that
// concurrent uploads never lose an increment.
func (r *ProjectPostgres) BeginProcessing(ctx context.Context, id string) (*entity.Project, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE projects
		SET processing_count = processing_count + 1,
		    status = $2
		WHERE id = $1
		RETURNING `+projectColumns,
		id, entity.ProjectStatusProcessing,
	)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProjectNotFound
		}
		return nil, fmt.Errorf("begin processing: %w", err)
	}
	return project, nil
}

// CompleteProcessing releases one processing slot. The decrement clamps at
// zero and the status flips to ready exactly when the last slot is released.
// CASE and GREATEST both read the pre-update value, so the whole transition
// is one atomic statement.
func (r *ProjectPostgres) CompleteProcessing(ctx context.Context, id string) (*entity.Project, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE projects
		SET processing_count = GREATEST(processing_count - 1, 0),
		    status = CASE WHEN processing_count <= 1 THEN $2 ELSE status END
		WHERE id = $1
		RETURNING `+projectColumns,
		id, entity.ProjectStatusReady,
	)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProjectNotFound
		}
		return nil, fmt.Errorf("complete processing: %w", err)
	}
	return project, nil
}
