package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/ops-console/internal/domain"
)

// OrderStatusRequest names the explicit transition target.
type OrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderResponse is the API view of an order.
type OrderResponse struct {
	ID        string             `json:"id"`
	Customer  string             `json:"customer"`
	Merchant  string             `json:"merchant"`
	Amount    decimal.Decimal    `json:"amount"`
	Status    domain.OrderStatus `json:"status"`
	Items     []string           `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewOrderResponse maps an order.
func NewOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Customer:  o.Customer,
		Merchant:  o.Merchant,
		Amount:    o.Amount,
		Status:    o.Status,
		Items:     o.Items,
		CreatedAt: o.CreatedAt,
	}
}

// NewOrderListResponse maps an order list.
func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
