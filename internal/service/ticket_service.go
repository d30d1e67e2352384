package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/events"
	"github.com/spec-kit/ops-console/internal/repository"
	"github.com/spec-kit/ops-console/internal/workflow"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// TicketService coordinates support ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
	}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject    string
	Customer   string
	MerchantID string
	Priority   domain.TicketPriority
	Category   string
}

// Create opens a ticket assigned to the creating session's identity.
func (s *TicketService) Create(ctx context.Context, sess domain.Session, input TicketCreateInput) (*domain.Ticket, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject required", nil)
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": input.Priority})
	}

	ticket := &domain.Ticket{
		Subject:    subject,
		Customer:   strings.TrimSpace(input.Customer),
		MerchantID: input.MerchantID,
		Priority:   input.Priority,
		Category:   input.Category,
		Status:     domain.TicketStatusOpen,
		Assignee:   sess.Identity,
		CreatedAt:  time.Now(),
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Category == "" {
		ticket.Category = "General"
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketOpened,
		EntityID: ticket.ID,
		Actor:    events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.TicketOpenedPayload{
			Subject:  ticket.Subject,
			Priority: ticket.Priority,
			Assignee: ticket.Assignee,
		},
	})
	return ticket, nil
}

// List returns tickets narrowed by the text query over id, subject, customer
// and category, ANDed with the exact priority filter.
func (s *TicketService) List(ctx context.Context, query, priorityFilter string) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if workflow.Matches(query, t.ID, t.Subject, t.Customer, t.Category) &&
			workflow.MatchesCategory(priorityFilter, string(t.Priority)) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Advance moves the ticket one step along its chain.
func (s *TicketService) Advance(ctx context.Context, sess domain.Session, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := workflow.AdvanceTicket(ticket.Status)
	if err != nil {
		return nil, err
	}
	if err := s.tickets.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketAdvanced,
		EntityID: id,
		Actor:    events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.TicketAdvancedPayload{
			OldStatus: ticket.Status,
			NewStatus: next,
		},
	})
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
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
