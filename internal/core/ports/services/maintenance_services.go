package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// MaintenanceReaderSvc defines read operations on maintenance requests
type MaintenanceReaderSvc interface {
	// GetRequestByID retrieves a maintenance request by ID.
	GetRequestByID(ctx context.Context, requestID string) (*domain.MaintenanceRequest, error)

	// ListRequests retrieves a paginated list of maintenance requests.
	ListRequests(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRequest, error)
}

// MaintenanceWriterSvc defines write operations on maintenance requests
type MaintenanceWriterSvc interface {
	// CreateRequest files a new maintenance request.
	CreateRequest(ctx context.Context, req dto.CreateMaintenanceRequest, userID string) (*domain.MaintenanceRequest, error)

	// UpdateRequestStatus moves a maintenance request through its lifecycle.
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus, userID string) error

	// DeleteRequest removes a maintenance request.
	DeleteRequest(ctx context.Context, requestID string, userID string) error
}

// MaintenanceSvcFacade combines all maintenance service interfaces
type MaintenanceSvcFacade interface {
	MaintenanceReaderSvc
	MaintenanceWriterSvc
}
