package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// ticketTransitions moves strictly forward. Resolved is terminal.
var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:       {TicketStatusInProgress},
	TicketStatusInProgress: {TicketStatusResolved},
	TicketStatusResolved:   {},
}

// IsValid checks whether the status is a known TicketStatus.
func (s TicketStatus) IsValid() bool {
	_, ok := ticketTransitions[s]
	return ok
}

// String returns the string representation of TicketStatus.
func (s TicketStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, candidate := range ticketTransitions[s] {
		if candidate == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s TicketStatus) Terminal() bool {
	return s.IsValid() && len(ticketTransitions[s]) == 0
}

// Next returns the single successor status; ok is false on resolved.
func (s TicketStatus) Next() (TicketStatus, bool) {
	next := ticketTransitions[s]
	if len(next) != 1 {
		return s, false
	}
	return next[0], true
}

// TicketPriority enumerates urgency buckets.
type TicketPriority string

const (
	TicketPriorityHigh   TicketPriority = "High"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityLow    TicketPriority = "Low"
)

// IsValid checks whether the priority is a known TicketPriority.
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow:
		return true
	}
	return false
}

// Ticket is a customer support request.
type Ticket struct {
	ID         string
	Subject    string
	Customer   string
	MerchantID string
	Priority   TicketPriority
	Category   string
	Status     TicketStatus
	Assignee   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
