package repositories

import (
	"context"
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// MaintenanceReader defines read operations for maintenance requests
type MaintenanceReader interface {
	// FindRequestByID retrieves a specific maintenance request by its unique identifier.
	FindRequestByID(ctx context.Context, requestID string) (*domain.MaintenanceRequest, error)

	// ListRequests retrieves a paginated list of maintenance requests, newest first.
	ListRequests(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRequest, error)
}

// MaintenanceWriter defines write operations for maintenance requests
type MaintenanceWriter interface {
	// SaveRequest persists a new maintenance request.
	SaveRequest(ctx context.Context, request domain.MaintenanceRequest) error

	// UpdateRequestStatus changes a maintenance request's workflow status.
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus, userID string, now time.Time) error

	// DeleteRequest permanently removes a maintenance request.
	DeleteRequest(ctx context.Context, requestID string) error
}

// MaintenanceRepositoryFacade combines all maintenance-related repository interfaces
type MaintenanceRepositoryFacade interface {
	MaintenanceReader
	MaintenanceWriter
}
