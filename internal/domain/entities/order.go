package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle label of an order.
//
// Orders are synthesized and returned once; nothing transitions them after
// creation, the full set exists so responses carry a well-known value.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// CartLine is a (product, quantity) pair held in a shopper's session.
// It is never persisted.
type CartLine struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartConfirmation is returned by a successful add-to-cart.
type CartConfirmation struct {
	Message  string   `json:"message"`
	Product  Product  `json:"product"`
	Quantity int      `json:"quantity"`
	Line     CartLine `json:"line"`
}

// OrderLine is one resolved line item of an order.
type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is the result of placing an order.
//
// Invariants:
//   - Total equals the sum of line subtotals rounded to two decimal places.
//   - Every line references a product that existed when the order was placed.
type Order struct {
	ID        string          `json:"id"`
	Items     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"created_at"`
}

// RatingConfirmation is returned by a successful rating update.
type RatingConfirmation struct {
	ProductID string  `json:"product_id"`
	Rating    float64 `json:"rating"`
	Message   string  `json:"message"`
}
