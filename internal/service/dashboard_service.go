package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/repository"
)

// DashboardService aggregates the console landing-page figures.
type DashboardService struct {
	merchants repository.MerchantRepository
	orders    repository.OrderRepository
	tickets   repository.TicketRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(merchants repository.MerchantRepository, orders repository.OrderRepository, tickets repository.TicketRepository) *DashboardService {
	return &DashboardService{merchants: merchants, orders: orders, tickets: tickets}
}

// DashboardStats is the overview aggregate.
type DashboardStats struct {
	Merchants        int             `json:"merchants"`
	PendingMerchants int             `json:"pending_merchants"`
	Orders           int             `json:"orders"`
	OpenTickets      int             `json:"open_tickets"`
	Revenue          decimal.Decimal `json:"revenue"`
	RecentOrders     []domain.Order  `json:"recent_orders"`
}

const recentOrderCount = 5

// Stats computes the dashboard aggregate from the authoritative collections.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	merchantCount, err := s.merchants.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingCount, err := s.merchants.CountByStatus(ctx, domain.MerchantStatusPending)
	if err != nil {
		return nil, err
	}
	openTickets, err := s.tickets.CountByStatus(ctx, domain.TicketStatusOpen)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Amount)
	}
	recent := orders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	return &DashboardStats{
		Merchants:        merchantCount,
		PendingMerchants: pendingCount,
		Orders:           len(orders),
		OpenTickets:      openTickets,
		Revenue:          revenue,
		RecentOrders:     recent,
	}, nil
}
