package services_test

import (
	"context"
	"testing"

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

// MockCartRepository is a mock type for the CartRepositoryFacade interface
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindCartItemByProperty(ctx context.Context, userID string, propertyID string) (*domain.CartItem, error) {
	args := m.Called(ctx, userID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) SaveCartItem(ctx context.Context, item domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateCartItem(ctx context.Context, item domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCartItem(ctx context.Context, userID string, cartItemID string) error {
	args := m.Called(ctx, userID, cartItemID)
	return args.Error(0)
}

func (m *MockCartRepository) ClearCart(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockCartRepository) ListOrdersByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockCartRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CartServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCartRepository
	mockProperty *MockPropertyReader
	service      portssvc.CartSvcFacade
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCartRepository)
	suite.mockProperty = new(MockPropertyReader)
	suite.service = services.NewCartService(suite.mockRepo, suite.mockProperty)
}

// --- Test Cases ---

func (suite *CartServiceTestSuite) TestAddItem_SnapshotsListingPrice() {
	ctx := context.Background()
	userID := uuid.NewString()
	propertyID := uuid.NewString()

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.RequireFromString("9500000.50"),
		IsActive:   true,
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockRepo.On("FindCartItemByProperty", ctx, userID, propertyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCartItem", ctx, mock.AnythingOfType("domain.CartItem")).Return(nil).Once()

	item, err := suite.service.AddItem(ctx, dto.AddCartItemRequest{PropertyID: propertyID, Quantity: 1}, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.True(item.UnitPrice.Equal(property.Price))
	suite.Equal(1, item.Quantity)
	suite.Equal(userID, item.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CartServiceTestSuite) TestAddItem_ExistingItemBumpsQuantity() {
	ctx := context.Background()
	userID := uuid.NewString()
	propertyID := uuid.NewString()

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.NewFromInt(8_000_000),
		IsActive:   true,
	}
	existing := &domain.CartItem{
		CartItemID: uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(8_000_000),
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockRepo.On("FindCartItemByProperty", ctx, userID, propertyID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCartItem", ctx, mock.MatchedBy(func(item domain.CartItem) bool {
		return item.Quantity == 3
	})).Return(nil).Once()

	item, err := suite.service.AddItem(ctx, dto.AddCartItemRequest{PropertyID: propertyID, Quantity: 2}, userID)

	suite.Require().NoError(err)
	suite.Equal(3, item.Quantity)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCartItem", mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestAddItem_InactiveProperty() {
	ctx := context.Background()
	propertyID := uuid.NewString()

	property := &domain.Property{
		PropertyID: propertyID,
		Price:      decimal.NewFromInt(8_000_000),
		IsActive:   false,
	}

	suite.mockProperty.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()

	item, err := suite.service.AddItem(ctx, dto.AddCartItemRequest{PropertyID: propertyID, Quantity: 1}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CartServiceTestSuite) TestCheckout_ComputesExactTotal() {
	ctx := context.Background()
	userID := uuid.NewString()

	items := []domain.CartItem{
		{
			CartItemID: uuid.NewString(),
			UserID:     userID,
			PropertyID: uuid.NewString(),
			Quantity:   2,
			UnitPrice:  decimal.RequireFromString("100000.10"),
		},
		{
			CartItemID: uuid.NewString(),
			UserID:     userID,
			PropertyID: uuid.NewString(),
			Quantity:   1,
			UnitPrice:  decimal.RequireFromString("0.30"),
		},
	}

	suite.mockRepo.On("FindCartItems", ctx, userID).Return(items, nil).Once()
	suite.mockRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	order, err := suite.service.Checkout(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderPlaced, order.Status)
	suite.Len(order.Lines, 2)
	// 2 * 100000.10 + 0.30, exact in decimal arithmetic
	suite.True(order.Total.Equal(decimal.RequireFromString("200000.50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CartServiceTestSuite) TestCheckout_EmptyCart() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindCartItems", ctx, userID).Return([]domain.CartItem{}, nil).Once()

	order, err := suite.service.Checkout(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestGetOrderByID_OtherUsersOrderHidden() {
	ctx := context.Background()
	orderID := uuid.NewString()

	order := &domain.Order{
		OrderID: orderID,
		UserID:  uuid.NewString(),
		Status:  domain.OrderPlaced,
	}

	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(order, nil).Once()

	got, err := suite.service.GetOrderByID(ctx, orderID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CartServiceTestSuite) TestUpdateItemQuantity_NotInCart() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindCartItems", ctx, userID).Return([]domain.CartItem{}, nil).Once()

	err := suite.service.UpdateItemQuantity(ctx, uuid.NewString(), 2, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
