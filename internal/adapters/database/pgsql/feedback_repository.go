package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	"github.com/homevista/homevista_backend/internal/models"
)

type PgxFeedbackRepository struct {
	pool *pgxpool.Pool
}

// newPgxFeedbackRepository creates a new repository for feedback data.
func newPgxFeedbackRepository(pool *pgxpool.Pool) portsrepo.FeedbackRepositoryFacade {
	return &PgxFeedbackRepository{pool: pool}
}

// Ensure PgxFeedbackRepository implements portsrepo.FeedbackRepositoryFacade
var _ portsrepo.FeedbackRepositoryFacade = (*PgxFeedbackRepository)(nil)

func toDomainFeedback(m models.Feedback) domain.Feedback {
	return domain.Feedback{
		FeedbackID: m.FeedbackID,
		Name:       m.Name,
		Email:      m.Email,
		Rating:     m.Rating,
		Message:    m.Message,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const feedbackColumns = `feedback_id, name, email, rating, message, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	query := `
		INSERT INTO feedback (` + feedbackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		feedback.FeedbackID,
		feedback.Name,
		feedback.Email,
		feedback.Rating,
		feedback.Message,
		feedback.CreatedAt,
		feedback.CreatedBy,
		feedback.LastUpdatedAt,
		feedback.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save feedback %s: %w", feedback.FeedbackID, err)
	}
	return nil
}

func (r *PgxFeedbackRepository) ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	entries := []domain.Feedback{}
	for rows.Next() {
		var m models.Feedback
		err := rows.Scan(
			&m.FeedbackID,
			&m.Name,
			&m.Email,
			&m.Rating,
			&m.Message,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		entries = append(entries, toDomainFeedback(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxFeedbackRepository) DeleteFeedback(ctx context.Context, feedbackID string) error {
	query := `DELETE FROM feedback WHERE feedback_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, feedbackID)
	if err != nil {
		return fmt.Errorf("failed to delete feedback %s: %w", feedbackID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
