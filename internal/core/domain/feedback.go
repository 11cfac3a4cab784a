package domain

// Feedback is a user-submitted rating and comment about the platform.
type Feedback struct {
	FeedbackID string `json:"feedbackID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`
	Rating     int    `json:"rating"` // 1..5
	Message    string `json:"message"`
	AuditFields
}
