package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// CreateFeedbackRequest defines the data needed to submit feedback.
type CreateFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message" binding:"required"`
}

// FeedbackResponse defines the data returned for a feedback entry.
type FeedbackResponse struct {
	FeedbackID string    `json:"feedbackID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToFeedbackResponse converts a domain.Feedback to FeedbackResponse DTO
func ToFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID: f.FeedbackID,
		Name:       f.Name,
		Email:      f.Email,
		Rating:     f.Rating,
		Message:    f.Message,
		CreatedAt:  f.CreatedAt,
	}
}

// ToListFeedbackResponse converts a slice of domain.Feedback to response DTOs
func ToListFeedbackResponse(entries []domain.Feedback) []FeedbackResponse {
	res := make([]FeedbackResponse, len(entries))
	for i := range entries {
		res[i] = ToFeedbackResponse(&entries[i])
	}
	return res
}

// ListFeedbackParams defines query parameters for listing feedback.
type ListFeedbackParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListFeedbackResponse wraps the list of feedback entries.
type ListFeedbackResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
}
