package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/events"
	"github.com/spec-kit/ops-console/internal/repository"
	"github.com/spec-kit/ops-console/internal/workflow"
)

// ReconciliationService coordinates batch settlement of payment records.
type ReconciliationService struct {
	records    repository.ReconciliationRepository
	dispatcher events.Dispatcher
}

// ReconciliationDependencies bundles collaborators for reconciliation service.
type ReconciliationDependencies struct {
	ReconciliationRepo repository.ReconciliationRepository
	Dispatcher         events.Dispatcher
}

// NewReconciliationService constructs the service.
func NewReconciliationService(deps ReconciliationDependencies) *ReconciliationService {
	return &ReconciliationService{
		records:    deps.ReconciliationRepo,
		dispatcher: deps.Dispatcher,
	}
}

// List returns records narrowed by the text query over transaction id, order
// id, method, amount and status.
func (s *ReconciliationService) List(ctx context.Context, query string) ([]domain.ReconciliationRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.ReconciliationRecord, 0, len(records))
	for _, rec := range records {
		if workflow.Matches(query,
			rec.TransactionID, rec.OrderID, rec.Method,
			rec.Amount.String(), rec.Status.String()) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// Summary aggregates the unreconciled count and total processed amount.
type Summary struct {
	Unreconciled int             `json:"unreconciled"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// Summarize computes the reconciliation overview cards.
func (s *ReconciliationService) Summarize(ctx context.Context) (Summary, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{TotalAmount: decimal.Zero}
	for _, rec := range records {
		if !rec.Reconciled {
			summary.Unreconciled++
		}
		summary.TotalAmount = summary.TotalAmount.Add(rec.Amount)
	}
	return summary, nil
}

// ReconcileSelected settles the selected records sequentially, in selection
// order. The selection is rebuilt against freshly fetched state so records
// reconciled since they were marked are skipped as no-ops rather than
// errored. The first persistence failure stops the batch; earlier updates
// stay applied and the caller must re-fetch the authoritative list.
func (s *ReconciliationService) ReconcileSelected(ctx context.Context, sess domain.Session, ids []string) (workflow.BatchResult, error) {
	var result workflow.BatchResult
	if len(ids) == 0 {
		return result, nil
	}

	fresh, err := s.records.ListByIDs(ctx, ids)
	if err != nil {
		return result, err
	}
	byID := make(map[string]domain.ReconciliationRecord, len(fresh))
	for _, rec := range fresh {
		byID[rec.ID] = rec
	}

	selection := workflow.NewSelection()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rec, ok := byID[id]
		if !ok || rec.Reconciled {
			// already settled (or gone) by the time the batch ran
			result.Skipped++
			continue
		}
		selection.Toggle(rec)
	}

	pending := selection.IDs()
	for i, id := range pending {
		rec := byID[id]
		if _, err := workflow.TransitionReconciliation(rec.Status, domain.ReconciliationStatusBalanced); err != nil {
			result.Skipped++
			continue
		}
		if err := s.records.MarkReconciled(ctx, id); err != nil {
			result.Err = err
			result.Remaining = pending[i:]
			break
		}
		result.Succeeded++
	}
	if result.Err == nil {
		selection.Clear()
	}

	s.publish(ctx, events.Event{
		Type:  events.EventReconciliationApplied,
		Actor: events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.ReconciliationAppliedPayload{
			Succeeded: result.Succeeded,
			Skipped:   result.Skipped,
			Remaining: result.Remaining,
		},
	})
	return result, nil
}

func (s *ReconciliationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
