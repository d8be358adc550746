package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates order lifecycle states. Transitions are free-form
// assignment by an actor holding manage_orders; no ordering is enforced.
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusDevelopment OrderStatus = "development"
	OrderStatusDelivered   OrderStatus = "delivered"
)

// Valid reports whether the status is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDevelopment, OrderStatusDelivered:
		return true
	}
	return false
}

// Order references one user and one product. Amount is copied from the
// product price at creation time and never re-derived.
type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	ProductID int64           `json:"productId"`
	Status    OrderStatus     `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
