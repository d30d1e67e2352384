package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/events"
)

// capturingDispatcher records published events for assertions.
type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

// fakeMerchantRepo keeps merchants in memory, newest first.
type fakeMerchantRepo struct {
	merchants []domain.Merchant
	createErr error
}

func (r *fakeMerchantRepo) Create(_ context.Context, merchant *domain.Merchant) error {
	if r.createErr != nil {
		return r.createErr
	}
	if merchant.ID == "" {
		merchant.ID = "m-" + merchant.BusinessName
	}
	r.merchants = append([]domain.Merchant{*merchant}, r.merchants...)
	return nil
}

func (r *fakeMerchantRepo) GetByID(_ context.Context, id string) (*domain.Merchant, error) {
	for i := range r.merchants {
		if r.merchants[i].ID == id {
			m := r.merchants[i]
			return &m, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeMerchantRepo) List(context.Context) ([]domain.Merchant, error) {
	out := make([]domain.Merchant, len(r.merchants))
	copy(out, r.merchants)
	return out, nil
}

func (r *fakeMerchantRepo) UpdateStatus(_ context.Context, id string, status domain.MerchantStatus) error {
	for i := range r.merchants {
		if r.merchants[i].ID == id {
			r.merchants[i].Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeMerchantRepo) CountByStatus(_ context.Context, status domain.MerchantStatus) (int, error) {
	n := 0
	for _, m := range r.merchants {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeMerchantRepo) Count(context.Context) (int, error) {
	return len(r.merchants), nil
}

// fakeReconciliationRepo keeps records in memory and can fail MarkReconciled
// for chosen ids.
type fakeReconciliationRepo struct {
	records map[string]domain.ReconciliationRecord
	failOn  map[string]error
	marked  []string
	listErr error
}

func newFakeReconciliationRepo(records ...domain.ReconciliationRecord) *fakeReconciliationRepo {
	r := &fakeReconciliationRepo{
		records: make(map[string]domain.ReconciliationRecord, len(records)),
		failOn:  make(map[string]error),
	}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *fakeReconciliationRepo) GetByID(_ context.Context, id string) (*domain.ReconciliationRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &rec, nil
}

func (r *fakeReconciliationRepo) List(context.Context) ([]domain.ReconciliationRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.ReconciliationRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeReconciliationRepo) ListByIDs(_ context.Context, ids []string) ([]domain.ReconciliationRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.ReconciliationRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeReconciliationRepo) MarkReconciled(_ context.Context, id string) error {
	if err, ok := r.failOn[id]; ok {
		return err
	}
	rec, ok := r.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	rec.Status = domain.ReconciliationStatusBalanced
	rec.Reconciled = true
	r.records[id] = rec
	r.marked = append(r.marked, id)
	return nil
}

// fakeOperatorRepo keeps operators in memory, keyed by id and username.
type fakeOperatorRepo struct {
	operators []domain.Operator
}

func (r *fakeOperatorRepo) Create(_ context.Context, operator *domain.Operator) error {
	if operator.ID == "" {
		operator.ID = "op-" + operator.Username
	}
	r.operators = append(r.operators, *operator)
	return nil
}

func (r *fakeOperatorRepo) GetByID(_ context.Context, id string) (*domain.Operator, error) {
	for i := range r.operators {
		if r.operators[i].ID == id {
			op := r.operators[i]
			return &op, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOperatorRepo) GetByUsername(_ context.Context, username string) (*domain.Operator, error) {
	for i := range r.operators {
		if r.operators[i].Username == username {
			op := r.operators[i]
			return &op, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOperatorRepo) List(context.Context) ([]domain.Operator, error) {
	out := make([]domain.Operator, len(r.operators))
	copy(out, r.operators)
	return out, nil
}

func (r *fakeOperatorRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	for i := range r.operators {
		if r.operators[i].ID == id {
			r.operators[i].Role = role
			return nil
		}
	}
	return pgx.ErrNoRows
}

// fakeSessionStore keeps sessions in a map, ignoring TTL.
type fakeSessionStore struct {
	sessions map[string]domain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *fakeSessionStore) Save(_ context.Context, session domain.Session, _ time.Duration) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeSessionStore) Load(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// fakeTicketRepo keeps tickets in memory.
type fakeTicketRepo struct {
	tickets []domain.Ticket
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = "t-" + ticket.Subject
	}
	r.tickets = append(r.tickets, *ticket)
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			t := r.tickets[i]
			return &t, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTicketRepo) List(context.Context) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, id string, status domain.TicketStatus) error {
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets[i].Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeTicketRepo) CountByStatus(_ context.Context, status domain.TicketStatus) (int, error) {
	n := 0
	for _, t := range r.tickets {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeOrderRepo keeps orders in memory.
type fakeOrderRepo struct {
	orders []domain.Order
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOrderRepo) List(context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}
