package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
)

// feedbackService implements the FeedbackSvcFacade interface
type feedbackService struct {
	BaseService
	feedbackRepo portsrepo.FeedbackRepositoryFacade
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo portsrepo.FeedbackRepositoryFacade) portssvc.FeedbackSvcFacade {
	return &feedbackService{feedbackRepo: repo}
}

// Ensure feedbackService implements the FeedbackSvcFacade interface
var _ portssvc.FeedbackSvcFacade = (*feedbackService)(nil)

func (s *feedbackService) CreateFeedback(ctx context.Context, req dto.CreateFeedbackRequest, userID string) (*domain.Feedback, error) {
	now := time.Now()

	feedback := domain.Feedback{
		FeedbackID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Rating:     req.Rating,
		Message:    req.Message,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.feedbackRepo.SaveFeedback(ctx, feedback); err != nil {
		s.LogError(ctx, err, "Failed to save feedback",
			slog.String("feedback_id", feedback.FeedbackID))
		return nil, err
	}

	s.LogInfo(ctx, "Feedback recorded",
		slog.String("feedback_id", feedback.FeedbackID),
		slog.Int("rating", feedback.Rating))
	return &feedback, nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, feedbackID string) error {
	if err := s.feedbackRepo.DeleteFeedback(ctx, feedbackID); err != nil {
		s.LogError(ctx, err, "Failed to delete feedback",
			slog.String("feedback_id", feedbackID))
		return err
	}

	s.LogInfo(ctx, "Feedback deleted", slog.String("feedback_id", feedbackID))
	return nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error) {
	entries, err := s.feedbackRepo.ListFeedback(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list feedback",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	if entries == nil {
		return []domain.Feedback{}, nil
	}
	return entries, nil
}
