package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/utils/financing"
)

// FinanceApplicationReaderSvc defines read operations on finance applications
type FinanceApplicationReaderSvc interface {
	// GetApplicationByID retrieves an application by ID.
	GetApplicationByID(ctx context.Context, applicationID string) (*domain.FinanceApplication, error)

	// ListApplications retrieves a paginated list of applications.
	ListApplications(ctx context.Context, params dto.ListFinanceApplicationsParams) ([]domain.FinanceApplication, error)

	// GetAmortizationSchedule computes the payment schedule for a stored application.
	GetAmortizationSchedule(ctx context.Context, applicationID string) ([]financing.ScheduleEntry, error)

	// QuoteLoan derives all loan figures from the calculator's full form
	// state without persisting anything.
	QuoteLoan(ctx context.Context, req dto.LoanQuoteRequest) (*dto.LoanQuoteResponse, error)
}

// FinanceApplicationWriterSvc defines write operations on finance applications
type FinanceApplicationWriterSvc interface {
	// CreateApplication recomputes derived figures server-side and persists
	// a new application in the pending state.
	CreateApplication(ctx context.Context, req dto.CreateFinanceApplicationRequest, userID string) (*domain.FinanceApplication, error)

	// ApproveApplication transitions a pending application to approved.
	ApproveApplication(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error)

	// RejectApplication transitions a pending application to rejected.
	RejectApplication(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error)

	// DeleteApplication permanently removes an application.
	DeleteApplication(ctx context.Context, applicationID string, userID string) error
}

// FinanceApplicationSvcFacade combines all finance-application service interfaces
type FinanceApplicationSvcFacade interface {
	FinanceApplicationReaderSvc
	FinanceApplicationWriterSvc
}
