package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-console/internal/api/dto"
	"github.com/spec-kit/ops-console/internal/service"
)

// DashboardHandler serves the landing page overview cards.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Stats GET /dashboard.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"merchants":         stats.Merchants,
		"pending_merchants": stats.PendingMerchants,
		"orders":            stats.Orders,
		"open_tickets":      stats.OpenTickets,
		"revenue":           stats.Revenue,
		"recent_orders":     dto.NewOrderListResponse(stats.RecentOrders),
	}})
}
