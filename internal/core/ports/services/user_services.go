package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// UserReaderSvc defines read operations on users
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations on users
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser applies partial updates to a user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error)

	// DeleteUser soft deletes a user.
	DeleteUser(ctx context.Context, userID string, deleterID string) error
}

// UserAuthenticatorSvc verifies credentials for login.
type UserAuthenticatorSvc interface {
	// Authenticate checks email/password and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}
