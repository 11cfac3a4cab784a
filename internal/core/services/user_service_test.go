package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/core/services"
	"github.com/homevista/homevista_backend/internal/dto"
	"github.com/homevista/homevista_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deletedBy, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.False(user.IsAdmin)
	// The stored hash must verify against the original password
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, hashErr := utils.HashPassword(password)
	suite.Require().NoError(hashErr)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "asha@example.com",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, stored.Email, password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, hashErr := utils.HashPassword("correct-horse")
	suite.Require().NoError(hashErr)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "asha@example.com",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, stored.Email, "battery-staple")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown email and wrong password look identical to the caller
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	ctx := context.Background()
	userID := uuid.NewString()
	updaterID := uuid.NewString()
	newName := "Asha V"

	stored := &domain.User{
		UserID: userID,
		Name:   "Asha Verma",
		Phone:  "9876543210",
	}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.Phone == "9876543210" && u.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	deleterID := uuid.NewString()

	stored := &domain.User{UserID: userID}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockRepo.On("MarkUserDeleted", ctx, userID, deleterID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, deleterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
