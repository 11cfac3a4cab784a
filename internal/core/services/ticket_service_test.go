package services_test

import (
	"context"
	"testing"
	"time"

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

// MockTicketRepository is a mock type for the TicketRepositoryFacade interface
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListTickets(ctx context.Context, limit int, offset int) ([]domain.Ticket, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) SaveTicket(ctx context.Context, ticket domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) UpdateTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus, userID string, now time.Time) error {
	args := m.Called(ctx, ticketID, status, userID, now)
	return args.Error(0)
}

func (m *MockTicketRepository) DeleteTicket(ctx context.Context, ticketID string) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TicketServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTicketRepository
	service  portssvc.TicketSvcFacade
}

func (suite *TicketServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTicketRepository)
	suite.service = services.NewTicketService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *TicketServiceTestSuite) TestCreateTicket_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateTicketRequest{
		Subject:   "Broken search filter",
		Message:   "City filter returns no results",
		UserEmail: "asha@example.com",
		Priority:  "HIGH",
	}

	suite.mockRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.Ticket")).Return(nil).Once()

	ticket, err := suite.service.CreateTicket(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(ticket)
	suite.NotEmpty(ticket.TicketID)
	suite.Equal(domain.TicketOpen, ticket.Status)
	suite.Equal(domain.PriorityHigh, ticket.Priority)
	suite.Equal(userID, ticket.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_Success() {
	ctx := context.Background()
	ticketID := uuid.NewString()
	userID := uuid.NewString()

	open := &domain.Ticket{TicketID: ticketID, Status: domain.TicketOpen}

	suite.mockRepo.On("FindTicketByID", ctx, ticketID).Return(open, nil).Once()
	suite.mockRepo.On("UpdateTicketStatus", ctx, ticketID, domain.TicketInProgress, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateTicketStatus(ctx, ticketID, domain.TicketInProgress, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TicketServiceTestSuite) TestUpdateTicketStatus_ClosedRejected() {
	ctx := context.Background()
	ticketID := uuid.NewString()

	closed := &domain.Ticket{TicketID: ticketID, Status: domain.TicketClosed}

	suite.mockRepo.On("FindTicketByID", ctx, ticketID).Return(closed, nil).Once()

	err := suite.service.UpdateTicketStatus(ctx, ticketID, domain.TicketOpen, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTicketStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TicketServiceTestSuite) TestGetTicketByID_NotFound() {
	ctx := context.Background()
	ticketID := uuid.NewString()

	suite.mockRepo.On("FindTicketByID", ctx, ticketID).Return(nil, apperrors.ErrNotFound).Once()

	ticket, err := suite.service.GetTicketByID(ctx, ticketID)

	suite.Require().Error(err)
	suite.Nil(ticket)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TicketServiceTestSuite) TestListTickets_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListTickets", ctx, 20, 0).Return(nil, nil).Once()

	tickets, err := suite.service.ListTickets(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(tickets)
	suite.Empty(tickets)
}

func (suite *TicketServiceTestSuite) TestDeleteTicket_NotFound() {
	ctx := context.Background()
	ticketID := uuid.NewString()

	suite.mockRepo.On("FindTicketByID", ctx, ticketID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTicket(ctx, ticketID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTicket", mock.Anything, mock.Anything)
}

func (suite *TicketServiceTestSuite) TestDeleteTicket_RepoErrorPropagated() {
	ctx := context.Background()
	ticketID := uuid.NewString()

	ticket := &domain.Ticket{TicketID: ticketID, Status: domain.TicketResolved}

	suite.mockRepo.On("FindTicketByID", ctx, ticketID).Return(ticket, nil).Once()
	suite.mockRepo.On("DeleteTicket", ctx, ticketID).Return(assert.AnError).Once()

	err := suite.service.DeleteTicket(ctx, ticketID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestTicketServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TicketServiceTestSuite))
}
