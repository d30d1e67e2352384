package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/events"
	"github.com/spec-kit/ops-console/internal/repository"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// DirectoryService backs the admin panel: listing operator accounts and
// changing their roles. A role change is picked up at the operator's next
// login; their current session keeps its role until then.
type DirectoryService struct {
	operators  repository.OperatorRepository
	dispatcher events.Dispatcher
}

// DirectoryDependencies bundles collaborators for directory service.
type DirectoryDependencies struct {
	OperatorRepo repository.OperatorRepository
	Dispatcher   events.Dispatcher
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		operators:  deps.OperatorRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ListOperators returns all console accounts.
func (s *DirectoryService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return s.operators.List(ctx)
}

// ChangeRole assigns a new role to an operator and returns the fresh record.
func (s *DirectoryService) ChangeRole(ctx context.Context, sess domain.Session, id string, role domain.Role) (*domain.Operator, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	operator, err := s.operators.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if operator.Role == role {
		return operator, nil
	}
	if err := s.operators.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventOperatorRoleChanged,
		EntityID: id,
		Actor:    events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.OperatorRoleChangedPayload{
			OldRole: operator.Role,
			NewRole: role,
		},
	})
	return s.operators.GetByID(ctx, id)
}

func (s *DirectoryService) publish(ctx context.Context, event events.Event) {
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
