package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuizRepository defines the interface for quiz and quiz result persistence
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *entity.Quiz) error
	GetQuiz(ctx context.Context, id string) (*entity.Quiz, error)
	CreateResult(ctx context.Context, result *entity.QuizResult) error
	GetResult(ctx context.Context, id string) (*entity.QuizResult, error)
	ListResultsByUser(ctx context.Context, userID string) ([]*entity.QuizResult, error)
	DeleteByProject(ctx context.Context, projectID string) error
}

var _ QuizRepository = &QuizPostgres{}

// QuizPostgres implements QuizRepository using PostgreSQL. Question sets and
// verdicts are stored as jsonb documents; both records are immutable once
// written.
type QuizPostgres struct {
	db *pgxpool.Pool
}

func NewQuizPostgres(db *pgxpool.Pool) *QuizPostgres {
	return &QuizPostgres{db: db}
}

func (r *QuizPostgres) CreateQuiz(ctx context.Context, quiz *entity.Quiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal quiz questions: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO quizzes (id, project_id, user_id, questions, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		quiz.ID, quiz.ProjectID, quiz.UserID, questions, quiz.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}
	return nil
}

func (r *QuizPostgres) GetQuiz(ctx context.Context, id string) (*entity.Quiz, error) {
	var quiz entity.Quiz
	var questions []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, project_id, user_id, questions, created_at
		FROM quizzes WHERE id = $1`, id,
	).Scan(&quiz.ID, &quiz.ProjectID, &quiz.UserID, &questions, &quiz.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrQuizNotFound
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}

	if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal quiz questions: %w", err)
	}
	return &quiz, nil
}

func (r *QuizPostgres) CreateResult(ctx context.Context, result *entity.QuizResult) error {
	verdicts, err := json.Marshal(result.Verdicts)
	if err != nil {
		return fmt.Errorf("marshal quiz verdicts: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO quiz_results (id, quiz_id, project_id, user_id, score, total, verdicts, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		result.ID, result.QuizID, result.ProjectID, result.UserID,
		result.Score, result.Total, verdicts, result.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("create quiz result: %w", err)
	}
	return nil
}

func (r *QuizPostgres) GetResult(ctx context.Context, id string) (*entity.QuizResult, error) {
	result, err := r.scanResult(r.db.QueryRow(ctx, `
		SELECT id, quiz_id, project_id, user_id, score, total, verdicts, submitted_at
		FROM quiz_results WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrQuizNotFound
		}
		return nil, fmt.Errorf("get quiz result: %w", err)
	}
	return result, nil
}

func (r *QuizPostgres) ListResultsByUser(ctx context.Context, userID string) ([]*entity.QuizResult, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, quiz_id, project_id, user_id, score, total, verdicts, submitted_at
		FROM quiz_results WHERE user_id = $1
		ORDER BY submitted_at ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.QuizResult, 0)
	for rows.Next() {
		result, err := r.scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}

	return results, nil
}

func (r *QuizPostgres) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM quiz_results WHERE project_id = $1", projectID); err != nil {
		return fmt.Errorf("delete project quiz results: %w", err)
	}
	if _, err := r.db.Exec(ctx, "DELETE FROM quizzes WHERE project_id = $1", projectID); err != nil {
		return fmt.Errorf("delete project quizzes: %w", err)
	}
	return nil
}

func (r *QuizPostgres) scanResult(row pgx.Row) (*entity.QuizResult, error) {
	var result entity.QuizResult
	var verdicts []byte

	err := row.Scan(&result.ID, &result.QuizID, &result.ProjectID, &result.UserID,
		&result.Score, &result.Total, &verdicts, &result.SubmittedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(verdicts, &result.Verdicts); err != nil {
		return nil, fmt.Errorf("unmarshal quiz verdicts: %w", err)
	}
	return &result, nil
}
