package repositories

import (
	"context"
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// FinanceApplicationReader defines read operations for finance applications
type FinanceApplicationReader interface {
	// FindApplicationByID retrieves a specific application by its unique identifier.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.FinanceApplication, error)

	// ListApplications retrieves a paginated list of applications, optionally
	// filtered by status, newest first.
	ListApplications(ctx context.Context, status *domain.ApplicationStatus, limit int, offset int) ([]domain.FinanceApplication, error)
}

// FinanceApplicationWriter defines write operations for finance applications
type FinanceApplicationWriter interface {
	// SaveApplication persists a new application.
	SaveApplication(ctx context.Context, app domain.FinanceApplication) error

	// UpdateApplicationStatus transitions an application from one status to
	// another. The update only applies when the stored status equals from,
	// so terminal states cannot be overwritten.
	UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus, userID string, now time.Time) error

	// DeleteApplication permanently removes an application.
	DeleteApplication(ctx context.Context, applicationID string) error
}

// FinanceApplicationRepositoryFacade combines all finance-application repository interfaces
type FinanceApplicationRepositoryFacade interface {
	FinanceApplicationReader
	FinanceApplicationWriter
}
