package domain

import "time"

// User represents a registered user of the platform.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
