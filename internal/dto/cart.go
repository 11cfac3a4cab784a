package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest defines the data needed to add a property to the cart.
type AddCartItemRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest changes a cart item's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse defines the data returned for a cart item.
type CartItemResponse struct {
	CartItemID string          `json:"cartItemID"`
	PropertyID string          `json:"propertyID"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// ToCartItemResponse converts a domain.CartItem to CartItemResponse DTO
func ToCartItemResponse(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		CartItemID: item.CartItemID,
		PropertyID: item.PropertyID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		Subtotal:   item.Subtotal(),
	}
}

// CartResponse wraps a user's cart items with the computed total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// ToCartResponse converts cart items to a CartResponse with total.
func ToCartResponse(items []domain.CartItem) CartResponse {
	res := CartResponse{Items: make([]CartItemResponse, len(items)), Total: decimal.Zero}
	for i := range items {
		res.Items[i] = ToCartItemResponse(&items[i])
		res.Total = res.Total.Add(items[i].Subtotal())
	}
	return res
}

// OrderLineResponse defines the data returned for one order line.
type OrderLineResponse struct {
	PropertyID string          `json:"propertyID"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// OrderResponse defines the data returned for a placed order.
type OrderResponse struct {
	OrderID   string              `json:"orderID"`
	Lines     []OrderLineResponse `json:"lines"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(order *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = OrderLineResponse{
			PropertyID: l.PropertyID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		}
	}
	return OrderResponse{
		OrderID:   order.OrderID,
		Lines:     lines,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

// ListOrdersParams defines query parameters for listing a user's orders.
type ListOrdersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListOrdersResponse wraps the list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
