package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// FeedbackReaderSvc defines read operations on feedback entries
type FeedbackReaderSvc interface {
	// ListFeedback retrieves a paginated list of feedback entries.
	ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error)
}

// FeedbackWriterSvc defines write operations on feedback entries
type FeedbackWriterSvc interface {
	// CreateFeedback records a feedback entry.
	CreateFeedback(ctx context.Context, req dto.CreateFeedbackRequest, userID string) (*domain.Feedback, error)

	// DeleteFeedback permanently removes a feedback entry.
	DeleteFeedback(ctx context.Context, feedbackID string) error
}

// FeedbackSvcFacade combines all feedback service interfaces
type FeedbackSvcFacade interface {
	FeedbackReaderSvc
	FeedbackWriterSvc
}
