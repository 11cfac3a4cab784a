package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/core/services"
	"github.com/homevista/homevista_backend/internal/dto"
)

// MockMaintenanceRepository is a mock type for the MaintenanceRepositoryFacade interface
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) ListRequests(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) SaveRequest(ctx context.Context, request domain.MaintenanceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus, userID string, now time.Time) error {
	args := m.Called(ctx, requestID, status, userID, now)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) DeleteRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockMaintenanceRepository
	mockProperty *MockPropertyReader
	service      portssvc.MaintenanceSvcFacade
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMaintenanceRepository)
	suite.mockProperty = new(MockPropertyReader)
	suite.service = services.NewMaintenanceService(
		suite.mockRepo,
		services.WithMaintenancePropertyReader(suite.mockProperty),
	)
}

func validMaintenanceRequest(propertyID string) dto.CreateMaintenanceRequest {
	return dto.CreateMaintenanceRequest{
		PropertyID:  propertyID,
		TenantName:  "Ravi Kumar",
		TenantEmail: "ravi@example.com",
		TenantPhone: "9876543210",
		Category:    "PLUMBING",
		Description: "Kitchen sink is leaking",
	}
}

// --- Test Cases ---

func (suite *MaintenanceServiceTestSuite) TestCreateRequest_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	propertyID := uuid.NewString()

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.NewFromInt(5_000_000),
		IsActive:   true,
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockRepo.On("SaveRequest", ctx, mock.AnythingOfType("domain.MaintenanceRequest")).Return(nil).Once()

	request, err := suite.service.CreateRequest(ctx, validMaintenanceRequest(propertyID), userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(request)
	suite.NotEmpty(request.RequestID)
	suite.Equal(domain.MaintenanceSubmitted, request.Status)
	suite.Equal(domain.Plumbing, request.Category)
	suite.Equal(userID, request.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProperty.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCreateRequest_PropertyMissing() {
	ctx := context.Background()
	propertyID := uuid.NewString()

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(nil, apperrors.ErrNotFound).Once()

	request, err := suite.service.CreateRequest(ctx, validMaintenanceRequest(propertyID), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(request)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRequest", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateRequestStatus_Success() {
	ctx := context.Background()
	requestID := uuid.NewString()
	userID := uuid.NewString()

	submitted := &domain.MaintenanceRequest{RequestID: requestID, Status: domain.MaintenanceSubmitted}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(submitted, nil).Once()
	suite.mockRepo.On("UpdateRequestStatus", ctx, requestID, domain.MaintenanceInProgress, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateRequestStatus(ctx, requestID, domain.MaintenanceInProgress, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestUpdateRequestStatus_ResolvedRejected() {
	ctx := context.Background()
	requestID := uuid.NewString()

	resolved := &domain.MaintenanceRequest{RequestID: requestID, Status: domain.MaintenanceResolved}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(resolved, nil).Once()

	err := suite.service.UpdateRequestStatus(ctx, requestID, domain.MaintenanceSubmitted, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRequestStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestListRequests_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListRequests", ctx, 20, 0).Return(nil, nil).Once()

	requests, err := suite.service.ListRequests(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(requests)
	suite.Empty(requests)
}

func (suite *MaintenanceServiceTestSuite) TestDeleteRequest_NotFound() {
	ctx := context.Background()
	requestID := uuid.NewString()

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRequest(ctx, requestID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteRequest", mock.Anything, mock.Anything)
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
