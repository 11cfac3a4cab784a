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
)

// maintenanceService implements the MaintenanceSvcFacade interface
type maintenanceService struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
	propertyRepo    portsrepo.PropertyReader
}

// MaintenanceServiceOption is a functional option for configuring the maintenance service
type MaintenanceServiceOption func(*maintenanceService)

// WithMaintenancePropertyReader adds a property repository used to verify that
// requests reference existing properties.
func WithMaintenancePropertyReader(repo portsrepo.PropertyReader) MaintenanceServiceOption {
	return func(s *maintenanceService) {
		s.propertyRepo = repo
	}
}

// NewMaintenanceService creates a new maintenance request service with the provided options
func NewMaintenanceService(repo portsrepo.MaintenanceRepositoryFacade, options ...MaintenanceServiceOption) portssvc.MaintenanceSvcFacade {
	svc := &maintenanceService{
		maintenanceRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure maintenanceService implements the MaintenanceSvcFacade interface
var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

func (s *maintenanceService) CreateRequest(ctx context.Context, req dto.CreateMaintenanceRequest, userID string) (*domain.MaintenanceRequest, error) {
	if s.propertyRepo != nil {
		if _, err := s.propertyRepo.FindPropertyByID(ctx, req.PropertyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: property %s does not exist", apperrors.ErrValidation, req.PropertyID)
			}
			s.LogError(ctx, err, "Failed to resolve property for maintenance request",
				slog.String("property_id", req.PropertyID))
			return nil, err
		}
	}

	now := time.Now()

	request := domain.MaintenanceRequest{
		RequestID:   uuid.NewString(),
		PropertyID:  req.PropertyID,
		TenantName:  req.TenantName,
		TenantEmail: req.TenantEmail,
		TenantPhone: req.TenantPhone,
		Category:    domain.MaintenanceCategory(req.Category),
		Description: req.Description,
		Status:      domain.MaintenanceSubmitted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.maintenanceRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save maintenance request",
			slog.String("request_id", request.RequestID),
			slog.String("property_id", request.PropertyID))
		return nil, err
	}

	s.LogInfo(ctx, "Maintenance request created",
		slog.String("request_id", request.RequestID),
		slog.String("category", string(request.Category)))
	return &request, nil
}

func (s *maintenanceService) GetRequestByID(ctx context.Context, requestID string) (*domain.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find maintenance request",
				slog.String("request_id", requestID))
		}
		return nil, err
	}
	return request, nil
}

func (s *maintenanceService) ListRequests(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRequest, error) {
	requests, err := s.maintenanceRepo.ListRequests(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list maintenance requests",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	if requests == nil {
		return []domain.MaintenanceRequest{}, nil
	}
	return requests, nil
}

func (s *maintenanceService) UpdateRequestStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus, userID string) error {
	request, err := s.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.Status == domain.MaintenanceResolved {
		err := fmt.Errorf("%w: maintenance request %s is already resolved", apperrors.ErrValidation, requestID)
		s.LogError(ctx, err, "Rejected status update on resolved request",
			slog.String("request_id", requestID),
			slog.String("requested_status", string(status)))
		return err
	}

	now := time.Now()
	if err := s.maintenanceRepo.UpdateRequestStatus(ctx, requestID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update maintenance request status",
			slog.String("request_id", requestID),
			slog.String("requested_status", string(status)))
		return err
	}

	s.LogInfo(ctx, "Maintenance request status updated",
		slog.String("request_id", requestID),
		slog.String("status", string(status)))
	return nil
}

func (s *maintenanceService) DeleteRequest(ctx context.Context, requestID string, userID string) error {
	if _, err := s.GetRequestByID(ctx, requestID); err != nil {
		return err
	}

	if err := s.maintenanceRepo.DeleteRequest(ctx, requestID); err != nil {
		s.LogError(ctx, err, "Failed to delete maintenance request",
			slog.String("request_id", requestID))
		return err
	}

	s.LogInfo(ctx, "Maintenance request deleted",
		slog.String("request_id", requestID),
		slog.String("deleted_by", userID))
	return nil
}
