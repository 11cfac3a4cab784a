package services

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/dto"
)

// CartReaderSvc defines read operations on carts and orders
type CartReaderSvc interface {
	// GetCart retrieves the user's cart items.
	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)

	// GetOrderByID retrieves a placed order by ID.
	GetOrderByID(ctx context.Context, orderID string, userID string) (*domain.Order, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID string, limit int, offset int) ([]domain.Order, error)
}

// CartWriterSvc defines write operations on carts and orders
type CartWriterSvc interface {
	// AddItem puts a property into the user's cart at its current listing price.
	AddItem(ctx context.Context, req dto.AddCartItemRequest, userID string) (*domain.CartItem, error)

	// UpdateItemQuantity changes the quantity of a cart item.
	UpdateItemQuantity(ctx context.Context, cartItemID string, quantity int, userID string) error

	// RemoveItem deletes a cart item.
	RemoveItem(ctx context.Context, cartItemID string, userID string) error

	// Checkout snapshots the cart into an order and empties the cart.
	Checkout(ctx context.Context, userID string) (*domain.Order, error)
}

// CartSvcFacade combines all cart service interfaces
type CartSvcFacade interface {
	CartReaderSvc
	CartWriterSvc
}
