package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ops-console/internal/domain"
)

func TestTransitionMerchant(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.MerchantStatus
		requested domain.MerchantStatus
		wantErr   error
	}{
		{name: "pending to active", current: domain.MerchantStatusPending, requested: domain.MerchantStatusActive},
		{name: "pending to rejected", current: domain.MerchantStatusPending, requested: domain.MerchantStatusRejected},
		{name: "active is terminal", current: domain.MerchantStatusActive, requested: domain.MerchantStatusRejected, wantErr: ErrInvalidTransition},
		{name: "rejected is terminal", current: domain.MerchantStatusRejected, requested: domain.MerchantStatusActive, wantErr: ErrInvalidTransition},
		{name: "self transition rejected", current: domain.MerchantStatusPending, requested: domain.MerchantStatusPending, wantErr: ErrInvalidTransition},
		{name: "unknown target rejected", current: domain.MerchantStatusPending, requested: domain.MerchantStatus("archived"), wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionMerchant(tt.current, tt.requested)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.current, got, "status must be unchanged on rejection")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.requested, got)
		})
	}
}

func TestTransitionOrder(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.OrderStatus
		requested domain.OrderStatus
		wantErr   error
	}{
		{name: "pending to processing", current: domain.OrderStatusPending, requested: domain.OrderStatusProcessing},
		{name: "processing to shipped", current: domain.OrderStatusProcessing, requested: domain.OrderStatusShipped},
		{name: "shipped to delivered", current: domain.OrderStatusShipped, requested: domain.OrderStatusDelivered},
		{name: "no skipping", current: domain.OrderStatusPending, requested: domain.OrderStatusShipped, wantErr: ErrInvalidTransition},
		{name: "no going back", current: domain.OrderStatusShipped, requested: domain.OrderStatusProcessing, wantErr: ErrInvalidTransition},
		{name: "delivered is terminal", current: domain.OrderStatusDelivered, requested: domain.OrderStatusPending, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionOrder(tt.current, tt.requested)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.current, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.requested, got)
		})
	}
}

func TestAdvanceOrder(t *testing.T) {
	next, err := AdvanceOrder(domain.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, next)

	next, err = AdvanceOrder(next)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, next)

	next, err = AdvanceOrder(next)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, next)

	_, err = AdvanceOrder(next)
	require.ErrorIs(t, err, ErrNoFurtherTransition)
}

func TestAdvanceTicket(t *testing.T) {
	next, err := AdvanceTicket(domain.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, next)

	next, err = AdvanceTicket(next)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, next)

	_, err = AdvanceTicket(next)
	require.ErrorIs(t, err, ErrNoFurtherTransition)
}

func TestTransitionReconciliation(t *testing.T) {
	got, err := TransitionReconciliation(domain.ReconciliationStatusPending, domain.ReconciliationStatusBalanced)
	require.NoError(t, err)
	assert.Equal(t, domain.ReconciliationStatusBalanced, got)

	_, err = TransitionReconciliation(domain.ReconciliationStatusBalanced, domain.ReconciliationStatusBalanced)
	require.ErrorIs(t, err, ErrInvalidTransition)
}
