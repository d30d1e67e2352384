package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus enumerates settlement states for payment records.
type ReconciliationStatus string

const (
	ReconciliationStatusPending  ReconciliationStatus = "pending"
	ReconciliationStatusBalanced ReconciliationStatus = "balanced"
)

// reconciliationTransitions allows only pending -> balanced.
var reconciliationTransitions = map[ReconciliationStatus][]ReconciliationStatus{
	ReconciliationStatusPending:  {ReconciliationStatusBalanced},
	ReconciliationStatusBalanced: {},
}

// IsValid checks whether the status is a known ReconciliationStatus.
func (s ReconciliationStatus) IsValid() bool {
	_, ok := reconciliationTransitions[s]
	return ok
}

// String returns the string representation of ReconciliationStatus.
func (s ReconciliationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
func (s ReconciliationStatus) CanTransitionTo(target ReconciliationStatus) bool {
	for _, candidate := range reconciliationTransitions[s] {
		if candidate == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s ReconciliationStatus) Terminal() bool {
	return s.IsValid() && len(reconciliationTransitions[s]) == 0
}

// ReconciliationRecord is a payment transaction awaiting settlement review.
// Status and Reconciled move together: balanced implies reconciled=true, and
// a reconciled record is excluded from any further selection.
type ReconciliationRecord struct {
	ID            string
	TransactionID string
	OrderID       string
	Amount        decimal.Decimal
	Method        string
	Status        ReconciliationStatus
	Reconciled    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
