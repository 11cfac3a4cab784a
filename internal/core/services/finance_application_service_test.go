package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/core/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/utils/financing"
)

// MockFinanceApplicationRepository is a mock type for the FinanceApplicationRepositoryFacade interface
type MockFinanceApplicationRepository struct {
	mock.Mock
}

func (m *MockFinanceApplicationRepository) SaveApplication(ctx context.Context, app domain.FinanceApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockFinanceApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.FinanceApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceApplication), args.Error(1)
}

func (m *MockFinanceApplicationRepository) ListApplications(ctx context.Context, status *domain.ApplicationStatus, limit int, offset int) ([]domain.FinanceApplication, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinanceApplication), args.Error(1)
}

func (m *MockFinanceApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus, userID string, now time.Time) error {
	args := m.Called(ctx, applicationID, from, to, userID, now)
	return args.Error(0)
}

func (m *MockFinanceApplicationRepository) DeleteApplication(ctx context.Context, applicationID string) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

// MockPropertyReader is a mock type for the PropertyReader interface
type MockPropertyReader struct {
	mock.Mock
}

func (m *MockPropertyReader) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyReader) ListProperties(ctx context.Context, filter portsrepo.PropertyFilter, limit int, offset int) ([]domain.Property, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

// --- Test Suite Setup ---

type FinanceApplicationServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockFinanceApplicationRepository
	mockProperty *MockPropertyReader
	service      portssvc.FinanceApplicationSvcFacade
}

func (suite *FinanceApplicationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFinanceApplicationRepository)
	suite.mockProperty = new(MockPropertyReader)
	suite.service = services.NewFinanceApplicationService(
		suite.mockRepo,
		services.WithPropertyReader(suite.mockProperty),
	)
}

func validCreateRequest(propertyID string) dto.CreateFinanceApplicationRequest {
	return dto.CreateFinanceApplicationRequest{
		PropertyID:       propertyID,
		UserName:         "Asha Verma",
		UserEmail:        "asha@example.com",
		UserPhone:        "9876543210",
		SelectedBank:     "HDFC",
		LoanAmount:       8_000_000,
		DownPayment:      2_000_000,
		InterestRate:     10,
		LoanTerm:         5,
		LoanType:         "FIXED",
		PaymentFrequency: "MONTHLY",
		PropertyTaxes:    50_000,
		HomeInsurance:    25_000,
		ValuationFees:    10_000,
		LegalFees:        15_000,
	}
}

// --- Test Cases ---

func (suite *FinanceApplicationServiceTestSuite) TestCreateApplication_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	propertyID := uuid.NewString()
	req := validCreateRequest(propertyID)

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.NewFromInt(10_000_000),
		IsActive:   true,
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.FinanceApplication")).Return(nil).Once()

	app, err := suite.service.CreateApplication(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(app)
	suite.NotEmpty(app.ApplicationID)
	suite.Equal(domain.StatusPending, app.Status)
	suite.Equal(domain.FixedRate, app.LoanType)
	suite.Equal(domain.Monthly, app.PaymentFrequency)
	suite.Equal(userID, app.CreatedBy)

	// Derived figures must match the engine exactly; the client never
	// supplies them
	summary, sumErr := financing.ComputeLoanSummary(req.LoanAmount, req.InterestRate, req.LoanTerm, financing.MonthlyPayments)
	suite.Require().NoError(sumErr)
	suite.Equal(financing.Round2(summary.PeriodicPayment), app.MonthlyPayment)
	suite.Equal(financing.Round2(summary.TotalInterest), app.TotalInterest)
	suite.Equal(financing.Round2(req.LoanAmount+summary.TotalInterest+100_000), app.TotalCost)

	// 8M loan against a 10M property
	suite.Equal("80.00", app.LTV)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProperty.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestCreateApplication_QuarterlyFrequency() {
	ctx := context.Background()
	propertyID := uuid.NewString()
	req := validCreateRequest(propertyID)
	req.LoanAmount = 4_000_000
	req.PaymentFrequency = "QUARTERLY"

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.NewFromInt(5_000_000),
		IsActive:   true,
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.FinanceApplication")).Return(nil).Once()

	app, err := suite.service.CreateApplication(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.Quarterly, app.PaymentFrequency)

	summary, sumErr := financing.ComputeLoanSummary(4_000_000, 10, 5, financing.QuarterlyPayments)
	suite.Require().NoError(sumErr)
	suite.Equal(financing.Round2(summary.PeriodicPayment), app.MonthlyPayment)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestCreateApplication_RateOutsidePolicy() {
	ctx := context.Background()
	req := validCreateRequest(uuid.NewString())
	req.InterestRate = 25

	app, err := suite.service.CreateApplication(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationServiceTestSuite) TestCreateApplication_TermOutsidePolicy() {
	ctx := context.Background()
	req := validCreateRequest(uuid.NewString())
	req.LoanTerm = 7

	app, err := suite.service.CreateApplication(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinanceApplicationServiceTestSuite) TestCreateApplication_PropertyMissing() {
	ctx := context.Background()
	propertyID := uuid.NewString()
	req := validCreateRequest(propertyID)

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(nil, apperrors.ErrNotFound).Once()

	app, err := suite.service.CreateApplication(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationServiceTestSuite) TestApproveApplication_Success() {
	ctx := context.Background()
	applicationID := uuid.NewString()
	userID := uuid.NewString()

	pending := &domain.FinanceApplication{
		ApplicationID: applicationID,
		Status:        domain.StatusPending,
	}

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(pending, nil).Once()
	suite.mockRepo.On("UpdateApplicationStatus", ctx, applicationID, domain.StatusPending, domain.StatusApproved, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	app, err := suite.service.ApproveApplication(ctx, applicationID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, app.Status)
	suite.Equal(userID, app.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestRejectApplication_Success() {
	ctx := context.Background()
	applicationID := uuid.NewString()
	userID := uuid.NewString()

	pending := &domain.FinanceApplication{
		ApplicationID: applicationID,
		Status:        domain.StatusPending,
	}

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(pending, nil).Once()
	suite.mockRepo.On("UpdateApplicationStatus", ctx, applicationID, domain.StatusPending, domain.StatusRejected, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	app, err := suite.service.RejectApplication(ctx, applicationID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, app.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestApproveApplication_AlreadySettled() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	rejected := &domain.FinanceApplication{
		ApplicationID: applicationID,
		Status:        domain.StatusRejected,
	}

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(rejected, nil).Once()

	app, err := suite.service.ApproveApplication(ctx, applicationID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateApplicationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationServiceTestSuite) TestApproveApplication_LostRaceConflict() {
	ctx := context.Background()
	applicationID := uuid.NewString()
	userID := uuid.NewString()

	pending := &domain.FinanceApplication{
		ApplicationID: applicationID,
		Status:        domain.StatusPending,
	}
	rejected := &domain.FinanceApplication{
		ApplicationID: applicationID,
		Status:        domain.StatusRejected,
	}

	// A concurrent reject wins between the pre-check read and the conditional
	// update: zero rows are affected and the re-read sees the settled row.
	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(pending, nil).Once()
	suite.mockRepo.On("UpdateApplicationStatus", ctx, applicationID, domain.StatusPending, domain.StatusApproved, userID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(rejected, nil).Once()

	app, err := suite.service.ApproveApplication(ctx, applicationID, userID)

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), string(domain.StatusRejected))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestApproveApplication_NotFound() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(nil, apperrors.ErrNotFound).Once()

	app, err := suite.service.ApproveApplication(ctx, applicationID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FinanceApplicationServiceTestSuite) TestGetAmortizationSchedule() {
	ctx := context.Background()
	applicationID := uuid.NewString()
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	app := &domain.FinanceApplication{
		ApplicationID:    applicationID,
		LoanAmount:       4_000_000,
		InterestRate:     10,
		LoanTerm:         5,
		PaymentFrequency: domain.Monthly,
		Status:           domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
		},
	}

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(app, nil).Once()

	entries, err := suite.service.GetAmortizationSchedule(ctx, applicationID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 60)
	suite.Equal(0.0, entries[59].RemainingBalance)
	suite.Equal(createdAt.AddDate(0, 1, 0), entries[0].DueDate)
}

func (suite *FinanceApplicationServiceTestSuite) TestListApplications_StatusFilter() {
	ctx := context.Background()
	statusStr := "PENDING"
	pendingStatus := domain.StatusPending

	params := dto.ListFinanceApplicationsParams{
		Limit:  10,
		Offset: 0,
		Status: &statusStr,
	}

	expected := []domain.FinanceApplication{
		{ApplicationID: uuid.NewString(), Status: domain.StatusPending},
	}

	suite.mockRepo.On("ListApplications", ctx, &pendingStatus, 10, 0).Return(expected, nil).Once()

	apps, err := suite.service.ListApplications(ctx, params)

	suite.Require().NoError(err)
	suite.Len(apps, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestListApplications_EmptyResult() {
	ctx := context.Background()
	params := dto.ListFinanceApplicationsParams{Limit: 20, Offset: 0}

	suite.mockRepo.On("ListApplications", ctx, (*domain.ApplicationStatus)(nil), 20, 0).Return(nil, nil).Once()

	apps, err := suite.service.ListApplications(ctx, params)

	suite.Require().NoError(err)
	suite.NotNil(apps)
	suite.Empty(apps)
}

func (suite *FinanceApplicationServiceTestSuite) TestDeleteApplication_Success() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	app := &domain.FinanceApplication{ApplicationID: applicationID, Status: domain.StatusPending}

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(app, nil).Once()
	suite.mockRepo.On("DeleteApplication", ctx, applicationID).Return(nil).Once()

	err := suite.service.DeleteApplication(ctx, applicationID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationServiceTestSuite) TestDeleteApplication_NotFound() {
	ctx := context.Background()
	applicationID := uuid.NewString()

	suite.mockRepo.On("FindApplicationByID", ctx, applicationID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteApplication(ctx, applicationID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteApplication", mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationServiceTestSuite) TestSaveError_Propagated() {
	ctx := context.Background()
	propertyID := uuid.NewString()
	req := validCreateRequest(propertyID)

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.NewFromInt(10_000_000),
		IsActive:   true,
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockRepo.On("SaveApplication", ctx, mock.AnythingOfType("domain.FinanceApplication")).Return(assert.AnError).Once()

	app, err := suite.service.CreateApplication(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *FinanceApplicationServiceTestSuite) TestQuoteLoan_Success() {
	ctx := context.Background()

	req := dto.LoanQuoteRequest{
		PropertyPrice:      10_000_000,
		DownPaymentPercent: 20,
		InterestRate:       10,
		LoanTerm:           5,
		PaymentFrequency:   "MONTHLY",
		PropertyTaxes:      50_000,
		HomeInsurance:      25_000,
		ValuationFees:      10_000,
		LegalFees:          15_000,
	}

	quote, err := suite.service.QuoteLoan(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(2_000_000.0, quote.DownPaymentAmount)
	suite.Equal(8_000_000.0, quote.LoanAmount)
	suite.Equal("80.00", quote.LTV)

	summary, err := financing.ComputeLoanSummary(8_000_000, 10, 5, 12)
	suite.Require().NoError(err)
	suite.Equal(financing.Round2(summary.PeriodicPayment), quote.PeriodicPayment)
	suite.Equal(financing.Round2(summary.TotalInterest), quote.TotalInterest)
	suite.Equal(financing.Round2(8_000_000+summary.TotalInterest+100_000), quote.TotalCost)

	// Identical inputs must produce identical figures.
	again, err := suite.service.QuoteLoan(ctx, req)
	suite.Require().NoError(err)
	suite.Equal(quote, again)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationServiceTestSuite) TestQuoteLoan_RateOutsidePolicy() {
	ctx := context.Background()

	quote, err := suite.service.QuoteLoan(ctx, dto.LoanQuoteRequest{
		PropertyPrice:      10_000_000,
		DownPaymentPercent: 20,
		InterestRate:       25,
		LoanTerm:           5,
		PaymentFrequency:   "MONTHLY",
	})

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestFinanceApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceApplicationServiceTestSuite))
}
