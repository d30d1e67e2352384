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

// MerchantService coordinates merchant onboarding and review.
type MerchantService struct {
	merchants  repository.MerchantRepository
	dispatcher events.Dispatcher
}

// MerchantDependencies bundles collaborators for merchant service.
type MerchantDependencies struct {
	MerchantRepo repository.MerchantRepository
	Dispatcher   events.Dispatcher
}

// NewMerchantService constructs the service.
func NewMerchantService(deps MerchantDependencies) *MerchantService {
	return &MerchantService{
		merchants:  deps.MerchantRepo,
		dispatcher: deps.Dispatcher,
	}
}

// MerchantCreateInput is the full onboarding form as submitted.
type MerchantCreateInput struct {
	BusinessName string
	BusinessType string
	Address      string
	TaxID        string
	ContactName  string
	ContactEmail string
	ContactPhone string
	IDProof      string
	License      string
}

// Create replays the submitted form through the onboarding wizard so the
// HTTP path and the interactive flow share one validation path, then
// persists the resulting draft.
func (s *MerchantService) Create(ctx context.Context, sess domain.Session, input MerchantCreateInput) (*domain.Merchant, error) {
	form := workflow.MerchantForm{
		BusinessName: input.BusinessName,
		BusinessType: input.BusinessType,
		Address:      input.Address,
		TaxID:        input.TaxID,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		IDProof:      input.IDProof,
		License:      input.License,
	}

	wizard := workflow.NewMerchantWizard()
	for wizard.Step() != workflow.StepReview {
		if _, err := wizard.Advance(form); err != nil {
			return nil, err
		}
	}
	merchant, err := wizard.Submit()
	if err != nil {
		return nil, err
	}

	if err := s.merchants.Create(ctx, &merchant); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventMerchantSubmitted,
		EntityID: merchant.ID,
		Actor:    events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.MerchantSubmittedPayload{
			BusinessName: merchant.BusinessName,
			BusinessType: merchant.BusinessType,
		},
	})
	return &merchant, nil
}

// List returns merchants narrowed by the text query against the business
// name. The full collection is fetched first; narrowing is an in-memory view
// operation.
func (s *MerchantService) List(ctx context.Context, query string) ([]domain.Merchant, error) {
	merchants, err := s.merchants.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Merchant, 0, len(merchants))
	for _, m := range merchants {
		if workflow.Matches(query, m.BusinessName) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// Review applies an explicit approve/reject transition. The target status
// must be named by the caller: the merchant table forks at pending, so no
// next status is ever inferred. Nothing is persisted on a rejected
// transition; on success the authoritative record is re-fetched.
func (s *MerchantService) Review(ctx context.Context, sess domain.Session, id string, requested domain.MerchantStatus) (*domain.Merchant, error) {
	if !requested.IsValid() {
		return nil, apperrors.NewValidationError("unknown merchant status", map[string]any{"status": requested})
	}

	merchant, err := s.merchants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := workflow.TransitionMerchant(merchant.Status, requested)
	if err != nil {
		return nil, err
	}
	if err := s.merchants.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventMerchantReviewed,
		EntityID: id,
		Actor:    events.Actor{Identity: sess.Identity, Role: sess.Role},
		Payload: events.MerchantReviewedPayload{
			OldStatus: merchant.Status,
			NewStatus: next,
		},
	})
	return s.merchants.GetByID(ctx, id)
}

func (s *MerchantService) publish(ctx context.Context, event events.Event) {
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
