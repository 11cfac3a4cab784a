package repositories

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// FeedbackReader defines read operations for feedback entries
type FeedbackReader interface {
	// ListFeedback retrieves a paginated list of feedback entries, newest first.
	ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error)
}

// FeedbackWriter defines write operations for feedback entries
type FeedbackWriter interface {
	// SaveFeedback persists a new feedback entry.
	SaveFeedback(ctx context.Context, feedback domain.Feedback) error

	// DeleteFeedback permanently removes a feedback entry.
	DeleteFeedback(ctx context.Context, feedbackID string) error
}

// FeedbackRepositoryFacade combines all feedback-related repository interfaces
type FeedbackRepositoryFacade interface {
	FeedbackReader
	FeedbackWriter
}
