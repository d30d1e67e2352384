package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerchantStatus(t *testing.T) {
	assert.True(t, MerchantStatusPending.IsValid())
	assert.False(t, MerchantStatus("archived").IsValid())

	assert.False(t, MerchantStatusPending.Terminal())
	assert.True(t, MerchantStatusActive.Terminal())
	assert.True(t, MerchantStatusRejected.Terminal())
	assert.False(t, MerchantStatus("archived").Terminal(), "unknown status is not terminal")

	assert.True(t, MerchantStatusPending.CanTransitionTo(MerchantStatusActive))
	assert.True(t, MerchantStatusPending.CanTransitionTo(MerchantStatusRejected))
	assert.False(t, MerchantStatusActive.CanTransitionTo(MerchantStatusPending))
}

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		current OrderStatus
		next    OrderStatus
		ok      bool
	}{
		{current: OrderStatusPending, next: OrderStatusProcessing, ok: true},
		{current: OrderStatusProcessing, next: OrderStatusShipped, ok: true},
		{current: OrderStatusShipped, next: OrderStatusDelivered, ok: true},
		{current: OrderStatusDelivered, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			next, ok := tt.current.Next()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.next, next)
			}
		})
	}
}

func TestTicketStatusNext(t *testing.T) {
	next, ok := TicketStatusOpen.Next()
	assert.True(t, ok)
	assert.Equal(t, TicketStatusInProgress, next)

	next, ok = TicketStatusInProgress.Next()
	assert.True(t, ok)
	assert.Equal(t, TicketStatusResolved, next)

	_, ok = TicketStatusResolved.Next()
	assert.False(t, ok)
}

func TestTicketPriorityIsValid(t *testing.T) {
	assert.True(t, TicketPriorityHigh.IsValid())
	assert.True(t, TicketPriorityMedium.IsValid())
	assert.True(t, TicketPriorityLow.IsValid())
	assert.False(t, TicketPriority("urgent").IsValid())
	assert.False(t, TicketPriority("high").IsValid(), "priorities are case sensitive")
}

func TestReconciliationStatus(t *testing.T) {
	assert.True(t, ReconciliationStatusPending.CanTransitionTo(ReconciliationStatusBalanced))
	assert.False(t, ReconciliationStatusBalanced.CanTransitionTo(ReconciliationStatusPending))
	assert.True(t, ReconciliationStatusBalanced.Terminal())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAgent.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("owner").IsValid())
}
