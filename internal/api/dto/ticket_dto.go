package dto

import (
	"time"

	"github.com/spec-kit/ops-console/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject    string                `json:"subject"`
	Customer   string                `json:"customer"`
	MerchantID string                `json:"merchant_id"`
	Priority   domain.TicketPriority `json:"priority"`
	Category   string                `json:"category"`
}

// TicketResponse is the API view of a ticket.
type TicketResponse struct {
	ID         string                `json:"id"`
	Subject    string                `json:"subject"`
	Customer   string                `json:"customer"`
	MerchantID string                `json:"merchant_id"`
	Priority   domain.TicketPriority `json:"priority"`
	Category   string                `json:"category"`
	Status     domain.TicketStatus   `json:"status"`
	Assignee   string                `json:"assignee"`
	CreatedAt  time.Time             `json:"created_at"`
}

// NewTicketResponse maps a ticket.
func NewTicketResponse(t domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		Subject:    t.Subject,
		Customer:   t.Customer,
		MerchantID: t.MerchantID,
		Priority:   t.Priority,
		Category:   t.Category,
		Status:     t.Status,
		Assignee:   t.Assignee,
		CreatedAt:  t.CreatedAt,
	}
}

// NewTicketListResponse maps a ticket list.
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}
