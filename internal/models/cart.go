package models

import (
	"github.com/shopspring/decimal"
)

// CartItem is the database representation of a cart line.
type CartItem struct {
	CartItemID string          `db:"cart_item_id"`
	UserID     string          `db:"user_id"`
	PropertyID string          `db:"property_id"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	AuditFields
}

// Order is the database representation of a placed checkout order.
type Order struct {
	OrderID string          `db:"order_id"`
	UserID  string          `db:"user_id"`
	Total   decimal.Decimal `db:"total"`
	Status  string          `db:"status"`
	AuditFields
}

// OrderLine is the database representation of an order line snapshot.
type OrderLine struct {
	OrderLineID string          `db:"order_line_id"`
	OrderID     string          `db:"order_id"`
	PropertyID  string          `db:"property_id"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}
