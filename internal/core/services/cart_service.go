package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
	portssvc "github.com/homevista/homevista_backend/internal/core/ports/services"
	"github.com/homevista/homevista_backend/internal/dto"
)

// cartService implements the CartSvcFacade interface
type cartService struct {
	BaseService
	cartRepo     portsrepo.CartRepositoryFacade
	propertyRepo portsrepo.PropertyReader
}

// NewCartService creates a new cart service. The property repository supplies
// the listing price snapshotted onto cart items.
func NewCartService(repo portsrepo.CartRepositoryFacade, propertyRepo portsrepo.PropertyReader) portssvc.CartSvcFacade {
	return &cartService{
		cartRepo:     repo,
		propertyRepo: propertyRepo,
	}
}

// Ensure cartService implements the CartSvcFacade interface
var _ portssvc.CartSvcFacade = (*cartService)(nil)

// AddItem puts a property into the user's cart. The price is snapshotted at
// add time; later listing price changes do not touch existing cart items.
// Adding a property already in the cart bumps its quantity instead of
// creating a second line.
func (s *cartService) AddItem(ctx context.Context, req dto.AddCartItemRequest, userID string) (*domain.CartItem, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: property %s does not exist", apperrors.ErrValidation, req.PropertyID)
		}
		s.LogError(ctx, err, "Failed to resolve property for cart",
			slog.String("property_id", req.PropertyID))
		return nil, err
	}
	if !property.IsActive {
		return nil, fmt.Errorf("%w: property %s is no longer listed", apperrors.ErrValidation, req.PropertyID)
	}

	now := time.Now()

	existing, err := s.cartRepo.FindCartItemByProperty(ctx, userID, req.PropertyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check cart for existing item",
			slog.String("property_id", req.PropertyID))
		return nil, err
	}
	if existing != nil {
		existing.Quantity += req.Quantity
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = userID
		if err := s.cartRepo.UpdateCartItem(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to update cart item quantity",
				slog.String("cart_item_id", existing.CartItemID))
			return nil, err
		}
		return existing, nil
	}

	item := domain.CartItem{
		CartItemID: uuid.NewString(),
		UserID:     userID,
		PropertyID: req.PropertyID,
		Quantity:   req.Quantity,
		UnitPrice:  property.Price,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cartRepo.SaveCartItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save cart item",
			slog.String("cart_item_id", item.CartItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Cart item added",
		slog.String("cart_item_id", item.CartItemID),
		slog.String("property_id", item.PropertyID))
	return &item, nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	items, err := s.cartRepo.FindCartItems(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if items == nil {
		return []domain.CartItem{}, nil
	}
	return items, nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, cartItemID string, quantity int, userID string) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	}

	items, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].CartItemID != cartItemID {
			continue
		}
		items[i].Quantity = quantity
		items[i].LastUpdatedAt = time.Now()
		items[i].LastUpdatedBy = userID
		if err := s.cartRepo.UpdateCartItem(ctx, items[i]); err != nil {
			s.LogError(ctx, err, "Failed to update cart item",
				slog.String("cart_item_id", cartItemID))
			return err
		}
		return nil
	}

	return apperrors.ErrNotFound
}

func (s *cartService) RemoveItem(ctx context.Context, cartItemID string, userID string) error {
	if err := s.cartRepo.DeleteCartItem(ctx, userID, cartItemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to remove cart item",
				slog.String("cart_item_id", cartItemID))
		}
		return err
	}

	s.LogInfo(ctx, "Cart item removed",
		slog.String("cart_item_id", cartItemID))
	return nil
}

// Checkout snapshots the cart into an order. The repository persists the
// order and clears the cart in one transaction, so a crash cannot leave a
// placed order with its source cart still populated.
func (s *cartService) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	items, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	now := time.Now()
	orderID := uuid.NewString()

	lines := make([]domain.OrderLine, len(items))
	total := decimal.Zero
	for i, item := range items {
		lines[i] = domain.OrderLine{
			OrderLineID: uuid.NewString(),
			OrderID:     orderID,
			PropertyID:  item.PropertyID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		total = total.Add(item.Subtotal())
	}

	order := domain.Order{
		OrderID: orderID,
		UserID:  userID,
		Lines:   lines,
		Total:   total,
		Status:  domain.OrderPlaced,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cartRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to place order",
			slog.String("order_id", orderID))
		return nil, err
	}

	s.LogInfo(ctx, "Order placed",
		slog.String("order_id", orderID),
		slog.String("total", total.String()),
		slog.Int("line_count", len(lines)))
	return &order, nil
}

func (s *cartService) GetOrderByID(ctx context.Context, orderID string, userID string) (*domain.Order, error) {
	order, err := s.cartRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order",
				slog.String("order_id", orderID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if order.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	return order, nil
}

func (s *cartService) ListOrders(ctx context.Context, userID string, limit int, offset int) ([]domain.Order, error) {
	orders, err := s.cartRepo.ListOrdersByUser(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}
