package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/events"
	"github.com/spec-kit/ops-console/internal/repository"
	"github.com/spec-kit/ops-console/internal/workflow"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// OrderService coordinates order tracking workflows.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles collaborators for order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	Dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		dispatcher: deps.Dispatcher,
	}
}

// List returns orders narrowed by the text query on the order id ANDed with
// the exact status filter.
func (s *OrderService) List(ctx context.Context, query, statusFilter string) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if workflow.Matches(query, o.ID) && workflow.MatchesCategory(statusFilter, o.Status.String()) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Advance moves the order one step along its chain, deriving the next status
// from the transition table.
func (s *OrderService) Advance(ctx context.Context, sess domain.Session, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := workflow.AdvanceOrder(order.Status)
	if err != nil {
		return nil, err
	}
	return s.applyStatus(ctx, sess, order, next)
}

// Transition applies an explicitly requested status change.
func (s *OrderService) Transition(ctx context.Context, sess domain.Session, id string, requested domain.OrderStatus) (*domain.Order, error) {
	if !requested.IsValid() {
		return nil, apperrors.NewValidationError("unknown order status", map[string]any{"status": requested})
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := workflow.TransitionOrder(order.Status, requested)
	if err != nil {
		return nil, err
	}
	return s.applyStatus(ctx, sess, order, next)
}

func (s *OrderService) applyStatus(ctx context.Context, sess domain.Session, order *domain.Order, next domain.OrderStatus) (*domain.Order, error) {
	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventOrderAdvanced,
		EntityID: order.ID,
		Actor:    events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.OrderAdvancedPayload{
			OldStatus: order.Status,
			NewStatus: next,
		},
	})
	return s.orders.GetByID(ctx, order.ID)
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
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
