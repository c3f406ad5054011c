package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

//go:generate mockgen -source=feedback.go -destination=mocks/feedback.go -package=mocks

const (
	feedbackTable = "feedback f"
)

const createFeedbackTable = `
CREATE TABLE IF NOT EXISTS feedback (
	id         VARCHAR(32) PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	purpose    TEXT NOT NULL DEFAULT '',
	message    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type FeedbackRepository interface {
	Save(ctx context.Context, feedback *domain.Feedback) error
	List(ctx context.Context, limit int) ([]*domain.Feedback, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type feedbackRepository struct {
	conn postgres.Queryer
}

func NewFeedbackRepository(conn postgres.Queryer) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

// EnsureFeedbackSchema cria a tabela de feedback caso ainda não exista
func EnsureFeedbackSchema(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.ExecContext(ctx, createFeedbackTable); err != nil {
		return fmt.Errorf("erro ao criar tabela feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) Save(ctx context.Context, feedback *domain.Feedback) error {
	query, args, err := buildInsertFeedback(feedback)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) List(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	query, args, err := buildListFeedback(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	feedbacks := make([]*domain.Feedback, 0)
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear feedback: %w", err)
		}
		feedbacks = append(feedbacks, feedback)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return feedbacks, nil
}

func (r *feedbackRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	query, args, err := buildDeleteFeedbackOlderThan(time.Now().AddDate(0, 0, -days))
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir feedbacks antigos: %w", err)
	}

	return result.RowsAffected()
}

func buildInsertFeedback(feedback *domain.Feedback) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert("feedback").
		Columns("id", "name", "email", "purpose", "message", "created_at").
		Values(
			feedback.ID,
			feedback.Name,
			feedback.Email,
			feedback.Purpose,
			feedback.Message,
			feedback.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListFeedback(limit int) (string, []any, error) {
	builder := squirrel.
		Select("f.id, f.name, f.email, f.purpose, f.message, f.created_at").
		From(feedbackTable).
		OrderBy("f.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func buildDeleteFeedbackOlderThan(cutoff time.Time) (string, []any, error) {
	return squirrel.StatementBuilder.
		Delete("feedback").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanFeedback(rows *sql.Rows) (*domain.Feedback, error) {
	var feedback domain.Feedback
	err := rows.Scan(
		&feedback.ID,
		&feedback.Name,
		&feedback.Email,
		&feedback.Purpose,
		&feedback.Message,
		&feedback.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
