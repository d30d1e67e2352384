package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates fulfillment states for customer orders.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// orderTransitions moves strictly forward, one step at a time. Delivered is
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
}

// IsValid checks whether the status is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// String returns the string representation of OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

// Next returns the single successor status. The order chain never forks, so
// the successor is deterministic; ok is false on a terminal status.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next := orderTransitions[s]
	if len(next) != 1 {
		return s, false
	}
	return next[0], true
}

// Order is a customer order tracked by the console.
type Order struct {
	ID        string
	Customer  string
	Merchant  string
	Amount    decimal.Decimal
	Status    OrderStatus
	Items     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
