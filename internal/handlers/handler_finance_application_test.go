package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/handlers"
	"github.com/homevista/homevista_backend/internal/platform/config"
	"github.com/homevista/homevista_backend/internal/utils"
	"github.com/homevista/homevista_backend/internal/utils/financing"
)

// --- Mock FinanceApplicationService ---
type MockFinanceApplicationService struct {
	mock.Mock
}

func (m *MockFinanceApplicationService) CreateApplication(ctx context.Context, req dto.CreateFinanceApplicationRequest, userID string) (*domain.FinanceApplication, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceApplication), args.Error(1)
}
func (m *MockFinanceApplicationService) GetApplicationByID(ctx context.Context, applicationID string) (*domain.FinanceApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceApplication), args.Error(1)
}
func (m *MockFinanceApplicationService) ListApplications(ctx context.Context, params dto.ListFinanceApplicationsParams) ([]domain.FinanceApplication, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinanceApplication), args.Error(1)
}
func (m *MockFinanceApplicationService) GetAmortizationSchedule(ctx context.Context, applicationID string) ([]financing.ScheduleEntry, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]financing.ScheduleEntry), args.Error(1)
}
func (m *MockFinanceApplicationService) QuoteLoan(ctx context.Context, req dto.LoanQuoteRequest) (*dto.LoanQuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoanQuoteResponse), args.Error(1)
}
func (m *MockFinanceApplicationService) ApproveApplication(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error) {
	args := m.Called(ctx, applicationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceApplication), args.Error(1)
}
func (m *MockFinanceApplicationService) RejectApplication(ctx context.Context, applicationID string, userID string) (*domain.FinanceApplication, error) {
	args := m.Called(ctx, applicationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceApplication), args.Error(1)
}
func (m *MockFinanceApplicationService) DeleteApplication(ctx context.Context, applicationID string, userID string) error {
	args := m.Called(ctx, applicationID, userID)
	return args.Error(0)
}

var _ portssvc.FinanceApplicationSvcFacade = (*MockFinanceApplicationService)(nil)

// --- Mock UserService (needed for the admin gate on decision routes) ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterID string) error {
	args := m.Called(ctx, userID, deleterID)
	return args.Error(0)
}
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type FinanceApplicationHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFinanceService *MockFinanceApplicationService
	mockUserService    *MockUserService
	cfg                *config.Config
}

func (suite *FinanceApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "homevista-test",
		IsProduction:      true, // skip swagger registration
	}

	suite.mockFinanceService = new(MockFinanceApplicationService)
	suite.mockUserService = new(MockUserService)

	container := &portssvc.ServiceContainer{
		User:       suite.mockUserService,
		FinanceApp: suite.mockFinanceService,
	}
	handlers.RegisterRoutes(suite.router, suite.cfg, container)
}

func (suite *FinanceApplicationHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func validApplicationPayload(propertyID string) map[string]any {
	return map[string]any{
		"propertyId":       propertyID,
		"userName":         "Asha Rao",
		"userEmail":        "asha@example.com",
		"userPhone":        "9876543210",
		"selectedBank":     "First National",
		"loanAmount":       8000000.0,
		"downPayment":      2000000.0,
		"interestRate":     10.0,
		"loanTerm":         5,
		"loanType":         "FIXED",
		"paymentFrequency": "MONTHLY",
		"propertyTaxes":    50000.0,
		"homeInsurance":    25000.0,
		"valuationFees":    10000.0,
		"legalFees":        15000.0,
	}
}

func (suite *FinanceApplicationHandlerTestSuite) TestCreateApplication_Success() {
	userID := uuid.NewString()
	propertyID := uuid.NewString()

	expected := &domain.FinanceApplication{
		ApplicationID:  uuid.NewString(),
		PropertyID:     propertyID,
		LoanAmount:     8000000,
		InterestRate:   10,
		LoanTerm:       5,
		MonthlyPayment: 169977.93,
		LTV:            "80.00",
		Status:         domain.StatusPending,
	}

	suite.mockFinanceService.On("CreateApplication",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateFinanceApplicationRequest) bool {
			return req.PropertyID == propertyID && req.LoanAmount == 8000000
		}),
		userID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(validApplicationPayload(propertyID))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance-applications", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.FinanceApplicationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ApplicationID, resp.ApplicationID)
	suite.Equal("80.00", resp.LTV)
	suite.Equal("PENDING", resp.Status)

	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationHandlerTestSuite) TestCreateApplication_RateOutsidePolicyRejectedByBinding() {
	userID := uuid.NewString()

	payload := validApplicationPayload(uuid.NewString())
	payload["interestRate"] = 25.0

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance-applications", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "CreateApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationHandlerTestSuite) TestCreateApplication_MissingToken() {
	body, _ := json.Marshal(validApplicationPayload(uuid.NewString()))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance-applications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *FinanceApplicationHandlerTestSuite) TestGetAmortizationSchedule_Success() {
	userID := uuid.NewString()
	applicationID := uuid.NewString()

	entries, err := financing.AmortizationSchedule(8000000, 10, 5, 12, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.mockFinanceService.On("GetAmortizationSchedule", mock.Anything, applicationID).Return(entries, nil).Once()

	url := fmt.Sprintf("/api/v1/finance-applications/%s/schedule", applicationID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AmortizationScheduleResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(applicationID, resp.ApplicationID)
	suite.Len(resp.Entries, 60)
	suite.Equal(0.0, resp.Entries[59].RemainingBalance)

	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationHandlerTestSuite) TestGetApplication_NotFound() {
	userID := uuid.NewString()
	applicationID := uuid.NewString()

	suite.mockFinanceService.On("GetApplicationByID", mock.Anything, applicationID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance-applications/"+applicationID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *FinanceApplicationHandlerTestSuite) TestApproveApplication_AdminSuccess() {
	adminID := uuid.NewString()
	applicationID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, adminID).
		Return(&domain.User{UserID: adminID, IsAdmin: true}, nil).Once()

	approved := &domain.FinanceApplication{
		ApplicationID: applicationID,
		Status:        domain.StatusApproved,
	}
	suite.mockFinanceService.On("ApproveApplication", mock.Anything, applicationID, adminID).
		Return(approved, nil).Once()

	url := fmt.Sprintf("/api/v1/admin/finance-applications/%s/approve", applicationID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.FinanceApplicationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("APPROVED", resp.Status)

	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceApplicationHandlerTestSuite) TestApproveApplication_NonAdminForbidden() {
	userID := uuid.NewString()
	applicationID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, IsAdmin: false}, nil).Once()

	url := fmt.Sprintf("/api/v1/admin/finance-applications/%s/approve", applicationID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "ApproveApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceApplicationHandlerTestSuite) TestApproveApplication_AlreadyDecidedConflict() {
	adminID := uuid.NewString()
	applicationID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, adminID).
		Return(&domain.User{UserID: adminID, IsAdmin: true}, nil).Once()
	suite.mockFinanceService.On("ApproveApplication", mock.Anything, applicationID, adminID).
		Return(nil, fmt.Errorf("%w: application is already APPROVED", apperrors.ErrValidation)).Once()

	url := fmt.Sprintf("/api/v1/admin/finance-applications/%s/approve", applicationID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestFinanceApplicationHandler(t *testing.T) {
	suite.Run(t, new(FinanceApplicationHandlerTestSuite))
}
