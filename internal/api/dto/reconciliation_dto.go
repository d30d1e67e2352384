package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/workflow"
)

// ReconcileRequest carries the selected record ids, in selection order.
type ReconcileRequest struct {
	IDs []string `json:"ids"`
}

// ReconcileResponse reports the batch outcome. Succeeded records stay
// settled even when the batch stopped early; clients must re-fetch the list.
type ReconcileResponse struct {
	Succeeded int      `json:"succeeded"`
	Skipped   int      `json:"skipped"`
	Remaining []string `json:"remaining,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// NewReconcileResponse maps a batch result.
func NewReconcileResponse(result workflow.BatchResult) ReconcileResponse {
	resp := ReconcileResponse{
		Succeeded: result.Succeeded,
		Skipped:   result.Skipped,
		Remaining: result.Remaining,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}

// ReconciliationResponse is the API view of a reconciliation record.
type ReconciliationResponse struct {
	ID            string                      `json:"id"`
	TransactionID string                      `json:"transaction_id"`
	OrderID       string                      `json:"order_id"`
	Amount        decimal.Decimal             `json:"amount"`
	Method        string                      `json:"method"`
	Status        domain.ReconciliationStatus `json:"status"`
	Reconciled    bool                        `json:"reconciled"`
	CreatedAt     time.Time                   `json:"created_at"`
}

// NewReconciliationResponse maps a record.
func NewReconciliationResponse(rec domain.ReconciliationRecord) ReconciliationResponse {
	return ReconciliationResponse{
		ID:            rec.ID,
		TransactionID: rec.TransactionID,
		OrderID:       rec.OrderID,
		Amount:        rec.Amount,
		Method:        rec.Method,
		Status:        rec.Status,
		Reconciled:    rec.Reconciled,
		CreatedAt:     rec.CreatedAt,
	}
}

// NewReconciliationListResponse maps a record list.
func NewReconciliationListResponse(records []domain.ReconciliationRecord) []ReconciliationResponse {
	out := make([]ReconciliationResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, NewReconciliationResponse(rec))
	}
	return out
}
