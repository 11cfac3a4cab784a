package models

// Feedback is the database representation of user feedback.
type Feedback struct {
	FeedbackID string `db:"feedback_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Rating     int    `db:"rating"`
	Message    string `db:"message"`
	AuditFields
}
