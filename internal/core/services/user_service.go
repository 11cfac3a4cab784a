package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		IsAdmin:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Duplicate email on user registration",
				slog.String("email", req.Email))
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user",
			slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		user.Name = *req.Name
		updated = true
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for user update",
			slog.String("user_id", userID))
		return user, nil
	}

	now := time.Now()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = updaterID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated",
		slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, deleterID string) error {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}

	now := time.Now()
	if err := s.userRepo.MarkUserDeleted(ctx, userID, deleterID, now); err != nil {
		s.LogError(ctx, err, "Failed to delete user",
			slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted",
		slog.String("user_id", userID),
		slog.String("deleted_by", deleterID))
	return nil
}

// Authenticate verifies login credentials. A missing user and a wrong password
// both come back as ErrForbidden so callers cannot probe which emails exist.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login",
			slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	return user, nil
}
