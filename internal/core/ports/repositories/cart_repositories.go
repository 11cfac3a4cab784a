package repositories

import (
	"context"

	"github.com/homevista/homevista_backend/internal/core/domain"
)

// CartReader defines read operations for cart data
type CartReader interface {
	// FindCartItems retrieves all cart items for a user.
	FindCartItems(ctx context.Context, userID string) ([]domain.CartItem, error)

	// FindCartItemByProperty retrieves a user's cart item for a specific property.
	FindCartItemByProperty(ctx context.Context, userID string, propertyID string) (*domain.CartItem, error)
}

// CartWriter defines write operations for cart data
type CartWriter interface {
	// SaveCartItem persists a new cart item.
	SaveCartItem(ctx context.Context, item domain.CartItem) error

	// UpdateCartItem updates an existing cart item (quantity).
	UpdateCartItem(ctx context.Context, item domain.CartItem) error

	// DeleteCartItem removes a single cart item.
	DeleteCartItem(ctx context.Context, userID string, cartItemID string) error

	// ClearCart removes all cart items for a user.
	ClearCart(ctx context.Context, userID string) error
}

// OrderReader defines read operations for checkout orders
type OrderReader interface {
	// FindOrderByID retrieves an order with its lines.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByUser retrieves a user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Order, error)
}

// OrderWriter defines write operations for checkout orders
type OrderWriter interface {
	// SaveOrder persists an order and its lines, and clears the source cart,
	// atomically.
	SaveOrder(ctx context.Context, order domain.Order) error
}

// CartRepositoryFacade combines cart and order repository interfaces
type CartRepositoryFacade interface {
	CartReader
	CartWriter
	OrderReader
	OrderWriter
}
