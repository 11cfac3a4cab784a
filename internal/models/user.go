package models

import (
	"time"
)

// User is the database representation of a platform user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
