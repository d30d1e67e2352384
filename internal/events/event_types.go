package events

import (
	"time"

	"github.com/spec-kit/ops-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMerchantSubmitted     EventType = "merchant_submitted"
	EventMerchantReviewed      EventType = "merchant_reviewed"
	EventOrderAdvanced         EventType = "order_advanced"
	EventTicketOpened          EventType = "ticket_opened"
	EventTicketAdvanced        EventType = "ticket_advanced"
	EventReconciliationApplied EventType = "reconciliation_applied"
	EventOperatorRoleChanged   EventType = "operator_role_changed"
)

// AllEventTypes lists every event the console emits, for blanket subscribers.
var AllEventTypes = []EventType{
	EventMerchantSubmitted,
	EventMerchantReviewed,
	EventOrderAdvanced,
	EventTicketOpened,
	EventTicketAdvanced,
	EventReconciliationApplied,
	EventOperatorRoleChanged,
}

// Actor identifies the session behind an event.
type Actor struct {
	Identity string      `json:"identity"`
	Role     domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MerchantSubmittedPayload payload.
type MerchantSubmittedPayload struct {
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
}

// MerchantReviewedPayload payload.
type MerchantReviewedPayload struct {
	OldStatus domain.MerchantStatus `json:"old_status"`
	NewStatus domain.MerchantStatus `json:"new_status"`
}

// OrderAdvancedPayload payload.
type OrderAdvancedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	Subject  string                `json:"subject"`
	Priority domain.TicketPriority `json:"priority"`
	Assignee string                `json:"assignee"`
}

// TicketAdvancedPayload payload.
type TicketAdvancedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// ReconciliationAppliedPayload payload.
type ReconciliationAppliedPayload struct {
	Succeeded int      `json:"succeeded"`
	Skipped   int      `json:"skipped"`
	Remaining []string `json:"remaining,omitempty"`
}

// OperatorRoleChangedPayload payload.
type OperatorRoleChangedPayload struct {
	OldRole domain.Role `json:"old_role"`
	NewRole domain.Role `json:"new_role"`
}
