// Package workflow holds the pure decision core of the console: status
// transition validation, the merchant onboarding wizard, batch reconciliation
// selection, and list search predicates. Nothing in this package performs IO;
// callers persist accepted results and must not persist rejected ones.
package workflow

import (
	"errors"
	"fmt"

	"github.com/spec-kit/ops-console/internal/domain"
)

var (
	// ErrInvalidTransition is returned when a requested status is not in the
	// allowed-next set for the entity's current status, including any request
	// against a terminal status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoFurtherTransition is returned by Advance on a terminal status.
	ErrNoFurtherTransition = errors.New("no further transition")
)

// TransitionMerchant validates pending -> active|rejected. Merchants have no
// Advance: the table forks at pending, so the caller must name the target.
func TransitionMerchant(current, requested domain.MerchantStatus) (domain.MerchantStatus, error) {
	if !current.CanTransitionTo(requested) {
		return current, fmt.Errorf("%w: merchant %s -> %s", ErrInvalidTransition, current, requested)
	}
	return requested, nil
}

// TransitionOrder validates an explicit order status change.
func TransitionOrder(current, requested domain.OrderStatus) (domain.OrderStatus, error) {
	if !current.CanTransitionTo(requested) {
		return current, fmt.Errorf("%w: order %s -> %s", ErrInvalidTransition, current, requested)
	}
	return requested, nil
}

// TransitionTicket validates an explicit ticket status change.
func TransitionTicket(current, requested domain.TicketStatus) (domain.TicketStatus, error) {
	if !current.CanTransitionTo(requested) {
		return current, fmt.Errorf("%w: ticket %s -> %s", ErrInvalidTransition, current, requested)
	}
	return requested, nil
}

// TransitionReconciliation validates pending -> balanced. The caller sets
// reconciled=true alongside the accepted status.
func TransitionReconciliation(current, requested domain.ReconciliationStatus) (domain.ReconciliationStatus, error) {
	if !current.CanTransitionTo(requested) {
		return current, fmt.Errorf("%w: reconciliation %s -> %s", ErrInvalidTransition, current, requested)
	}
	return requested, nil
}

// AdvanceOrder derives the single next status from the order table.
func AdvanceOrder(current domain.OrderStatus) (domain.OrderStatus, error) {
	next, ok := current.Next()
	if !ok {
		return current, fmt.Errorf("%w: order is %s", ErrNoFurtherTransition, current)
	}
	return next, nil
}

// AdvanceTicket derives the single next status from the ticket table.
func AdvanceTicket(current domain.TicketStatus) (domain.TicketStatus, error) {
	next, ok := current.Next()
	if !ok {
		return current, fmt.Errorf("%w: ticket is %s", ErrNoFurtherTransition, current)
	}
	return next, nil
}
