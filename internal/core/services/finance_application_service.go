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
	"github.com/homevista/homevista_backend/internal/utils/financing"
)

// financeApplicationService implements the FinanceApplicationSvcFacade interface
type financeApplicationService struct {
	BaseService
	appRepo      portsrepo.FinanceApplicationRepositoryFacade
	propertyRepo portsrepo.PropertyReader
}

// FinanceApplicationServiceOption is a functional option for configuring the finance application service
type FinanceApplicationServiceOption func(*financeApplicationService)

// WithPropertyReader adds a property repository dependency used to resolve
// the property price for LTV computation.
func WithPropertyReader(repo portsrepo.PropertyReader) FinanceApplicationServiceOption {
	return func(s *financeApplicationService) {
		s.propertyRepo = repo
	}
}

// NewFinanceApplicationService creates a new finance application service with the provided options
func NewFinanceApplicationService(repo portsrepo.FinanceApplicationRepositoryFacade, options ...FinanceApplicationServiceOption) portssvc.FinanceApplicationSvcFacade {
	svc := &financeApplicationService{
		appRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure financeApplicationService implements the FinanceApplicationSvcFacade interface
var _ portssvc.FinanceApplicationSvcFacade = (*financeApplicationService)(nil)

// CreateApplication validates the request against lending policy, recomputes
// every derived figure from the raw inputs and persists the application in the
// pending state. Client-supplied derived figures are never trusted; the only
// numbers that reach storage come out of the financing package.
func (s *financeApplicationService) CreateApplication(ctx context.Context, req dto.CreateFinanceApplicationRequest, userID string) (*domain.FinanceApplication, error) {
	if err := financing.ValidatePolicy(req.InterestRate, req.LoanTerm); err != nil {
		s.LogError(ctx, err, "Finance application rejected by policy",
			slog.Float64("interest_rate", req.InterestRate),
			slog.Int("loan_term", req.LoanTerm))
		return nil, err
	}

	property, err := s.propertyRepo.FindPropertyByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: property %s does not exist", apperrors.ErrValidation, req.PropertyID)
		}
		s.LogError(ctx, err, "Failed to resolve property for finance application",
			slog.String("property_id", req.PropertyID))
		return nil, err
	}

	frequency := domain.PaymentFrequency(req.PaymentFrequency)
	paymentsPerYear := frequency.PaymentsPerYear()

	summary, err := financing.ComputeLoanSummary(req.LoanAmount, req.InterestRate, req.LoanTerm, paymentsPerYear)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute loan summary",
			slog.String("property_id", req.PropertyID))
		return nil, err
	}

	ltv, err := financing.LoanToValue(req.LoanAmount, property.Price.InexactFloat64())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute loan to value",
			slog.String("property_id", req.PropertyID))
		return nil, err
	}

	now := time.Now()
	additionalCosts := req.PropertyTaxes + req.HomeInsurance + req.ValuationFees + req.LegalFees

	app := domain.FinanceApplication{
		ApplicationID:    uuid.NewString(),
		PropertyID:       req.PropertyID,
		UserName:         req.UserName,
		UserEmail:        req.UserEmail,
		UserPhone:        req.UserPhone,
		SelectedBank:     req.SelectedBank,
		LoanAmount:       req.LoanAmount,
		DownPayment:      req.DownPayment,
		InterestRate:     req.InterestRate,
		LoanTerm:         req.LoanTerm,
		LoanType:         domain.LoanType(req.LoanType),
		PaymentFrequency: frequency,
		PropertyTaxes:    req.PropertyTaxes,
		HomeInsurance:    req.HomeInsurance,
		ValuationFees:    req.ValuationFees,
		LegalFees:        req.LegalFees,
		MonthlyPayment:   financing.Round2(summary.PeriodicPayment),
		TotalInterest:    financing.Round2(summary.TotalInterest),
		TotalCost:        financing.Round2(req.LoanAmount + summary.TotalInterest + additionalCosts),
		LTV:              financing.FormatLTV(ltv),
		Status:           domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.appRepo.SaveApplication(ctx, app); err != nil {
		s.LogError(ctx, err, "Failed to save finance application",
			slog.String("application_id", app.ApplicationID),
			slog.String("property_id", app.PropertyID))
		return nil, err
	}

	s.LogInfo(ctx, "Finance application created",
		slog.String("application_id", app.ApplicationID),
		slog.String("property_id", app.PropertyID),
		slog.String("ltv", app.LTV))
	return &app, nil
}

func (s *financeApplicationService) GetApplicationByID(ctx context.Context, applicationID string) (*domain.FinanceApplication, error) {
	app, err := s.appRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find finance application",
				slog.String("application_id", applicationID))
		}
		return nil, err
	}
	return app, nil
}

func (s *financeApplicationService) ListApplications(ctx context.Context, params dto.ListFinanceApplicationsParams) ([]domain.FinanceApplication, error) {
	var status *domain.ApplicationStatus
	if params.Status != nil {
		st := domain.ApplicationStatus(*params.Status)
		status = &st
	}

	apps, err := s.appRepo.ListApplications(ctx, status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list finance applications",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list finance applications: %w", err)
	}

	if apps == nil {
		return []domain.FinanceApplication{}, nil
	}
	return apps, nil
}

// GetAmortizationSchedule expands a stored application into its full payment
// schedule. The schedule is always derived on demand from the stored inputs,
// never persisted, so it cannot drift from the application.
func (s *financeApplicationService) GetAmortizationSchedule(ctx context.Context, applicationID string) ([]financing.ScheduleEntry, error) {
	app, err := s.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	entries, err := financing.AmortizationSchedule(app.LoanAmount, app.InterestRate, app.LoanTerm, app.PaymentFrequency.PaymentsPerYear(), app.CreatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute amortization schedule",
			slog.String("application_id", applicationID))
		return nil, err
	}

	return entries, nil
}

// QuoteLoan runs the calculator over the complete form state. Nothing is
// persisted; identical inputs always produce identical figures.
func (s *financeApplicationService) QuoteLoan(ctx context.Context, req dto.LoanQuoteRequest) (*dto.LoanQuoteResponse, error) {
	if err := financing.ValidatePolicy(req.InterestRate, req.LoanTerm); err != nil {
		return nil, err
	}

	frequency := domain.PaymentFrequency(req.PaymentFrequency)

	derived, err := financing.Recompute(financing.FormState{
		PropertyPrice:      req.PropertyPrice,
		DownPaymentPercent: req.DownPaymentPercent,
		InterestRate:       req.InterestRate,
		LoanTermYears:      req.LoanTerm,
		PaymentsPerYear:    frequency.PaymentsPerYear(),
		PropertyTaxes:      req.PropertyTaxes,
		HomeInsurance:      req.HomeInsurance,
		ValuationFees:      req.ValuationFees,
		LegalFees:          req.LegalFees,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToLoanQuoteResponse(derived)
	return &resp, nil
}

func (s *financeApplicationService) ApproveApplication(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error) {
	return s.transitionApplication(ctx, applicationID, domain.StatusApproved, userID)
}

func (s *financeApplicationService) RejectApplication(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error) {
	return s.transitionApplication(ctx, applicationID, domain.StatusRejected, userID)
}

// transitionApplication moves a pending application to the given terminal
// status. The repository update is conditional on the stored status still
// being pending, so concurrent decisions cannot overwrite each other.
func (s *financeApplicationService) transitionApplication(ctx context.Context, applicationID string, to domain.ApplicationStatus, userID string) (*domain.FinanceApplication, error) {
	app, err := s.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.IsTerminal() {
		err := fmt.Errorf("%w: application %s is already %s", apperrors.ErrValidation, applicationID, app.Status)
		s.LogError(ctx, err, "Rejected status transition on settled application",
			slog.String("application_id", applicationID),
			slog.String("current_status", string(app.Status)),
			slog.String("requested_status", string(to)))
		return nil, err
	}

	now := time.Now()
	if err := s.appRepo.UpdateApplicationStatus(ctx, applicationID, domain.StatusPending, to, userID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Zero rows affected: either a concurrent decision won the race or
			// the row was deleted. Re-read to tell the two apart.
			current, readErr := s.GetApplicationByID(ctx, applicationID)
			if readErr != nil {
				return nil, readErr
			}
			err = fmt.Errorf("%w: application %s is already %s", apperrors.ErrValidation, applicationID, current.Status)
			s.LogError(ctx, err, "Lost status transition race",
				slog.String("application_id", applicationID),
				slog.String("current_status", string(current.Status)),
				slog.String("requested_status", string(to)))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update finance application status",
			slog.String("application_id", applicationID),
			slog.String("requested_status", string(to)))
		return nil, err
	}

	app.Status = to
	app.LastUpdatedAt = now
	app.LastUpdatedBy = userID

	s.LogInfo(ctx, "Finance application settled",
		slog.String("application_id", applicationID),
		slog.String("status", string(to)))
	return app, nil
}

func (s *financeApplicationService) DeleteApplication(ctx context.Context, applicationID string, userID string) error {
	// Verify existence first so callers get a clean not-found
	if _, err := s.GetApplicationByID(ctx, applicationID); err != nil {
		return err
	}

	if err := s.appRepo.DeleteApplication(ctx, applicationID); err != nil {
		s.LogError(ctx, err, "Failed to delete finance application",
			slog.String("application_id", applicationID))
		return err
	}

	s.LogInfo(ctx, "Finance application deleted",
		slog.String("application_id", applicationID),
		slog.String("deleted_by", userID))
	return nil
}
