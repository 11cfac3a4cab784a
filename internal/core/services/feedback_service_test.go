package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/core/services"
	"github.com/homevista/homevista_backend/internal/dto"
)

// MockFeedbackRepository is a mock type for the FeedbackRepositoryFacade interface
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) DeleteFeedback(ctx context.Context, feedbackID string) error {
	args := m.Called(ctx, feedbackID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type FeedbackServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFeedbackRepository
	service  portssvc.FeedbackSvcFacade
}

func (suite *FeedbackServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFeedbackRepository)
	suite.service = services.NewFeedbackService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateFeedbackRequest{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Rating:  4,
		Message: "Smooth booking experience",
	}

	suite.mockRepo.On("SaveFeedback", ctx, mock.AnythingOfType("domain.Feedback")).Return(nil).Once()

	entry, err := suite.service.CreateFeedback(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.FeedbackID)
	suite.Equal(4, entry.Rating)
	suite.Equal(userID, entry.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_SaveErrorPropagated() {
	ctx := context.Background()

	req := dto.CreateFeedbackRequest{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Rating:  2,
		Message: "Listing photos were outdated",
	}

	suite.mockRepo.On("SaveFeedback", ctx, mock.AnythingOfType("domain.Feedback")).Return(assert.AnError).Once()

	entry, err := suite.service.CreateFeedback(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *FeedbackServiceTestSuite) TestListFeedback_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListFeedback", ctx, 20, 0).Return(nil, nil).Once()

	entries, err := suite.service.ListFeedback(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *FeedbackServiceTestSuite) TestDeleteFeedback_Success() {
	ctx := context.Background()
	feedbackID := uuid.NewString()

	suite.mockRepo.On("DeleteFeedback", ctx, feedbackID).Return(nil).Once()

	err := suite.service.DeleteFeedback(ctx, feedbackID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeedbackServiceTestSuite) TestDeleteFeedback_NotFound() {
	ctx := context.Background()
	feedbackID := uuid.NewString()

	suite.mockRepo.On("DeleteFeedback", ctx, feedbackID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFeedback(ctx, feedbackID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFeedbackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackServiceTestSuite))
}
