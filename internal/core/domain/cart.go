package domain

import (
	"github.com/shopspring/decimal"
)

// CartItem is a property reservation placed in a user's cart.
type CartItem struct {
	CartItemID string          `json:"cartItemID"` // Primary Key (e.g., UUID)
	UserID     string          `json:"userID"`
	PropertyID string          `json:"propertyID"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"` // Snapshot of the property price at add time
	AuditFields
}

// Subtotal returns unit price times quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderStatus tracks a checkout order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "PLACED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderLine is a snapshot of a cart item captured at checkout.
type OrderLine struct {
	OrderLineID string          `json:"orderLineID"`
	OrderID     string          `json:"orderID"`
	PropertyID  string          `json:"propertyID"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order is a placed checkout order. Payment capture is out of scope; the
// order records what was in the cart and the computed total.
type Order struct {
	OrderID string          `json:"orderID"` // Primary Key (e.g., UUID)
	UserID  string          `json:"userID"`
	Lines   []OrderLine     `json:"lines"`
	Total   decimal.Decimal `json:"total"`
	Status  OrderStatus     `json:"status"`
	AuditFields
}
