package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-console/internal/api/http/handlers"
	"github.com/spec-kit/ops-console/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Dashboard       *handlers.DashboardHandler
	Merchants       *handlers.MerchantsHandler
	Orders          *handlers.OrdersHandler
	Tickets         *handlers.TicketsHandler
	Reconciliations *handlers.ReconciliationsHandler
	Admin           *handlers.AdminHandler
	AuthMiddleware  *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every console view sits behind the
// session middleware plus its view's role gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/me", cfg.Auth.Me)

	dashboard := protected.Group("/dashboard", auth.RequireView(auth.ViewDashboard))
	dashboard.Get("/", cfg.Dashboard.Stats)

	merchants := protected.Group("/merchants", auth.RequireView(auth.ViewMerchants))
	merchants.Get("/", cfg.Merchants.ListMerchants)
	merchants.Post("/", cfg.Merchants.CreateMerchant)
	merchants.Post("/:id/review", cfg.Merchants.ReviewMerchant)

	orders := protected.Group("/orders", auth.RequireView(auth.ViewOrders))
	orders.Get("/", cfg.Orders.ListOrders)
	orders.Post("/:id/advance", cfg.Orders.AdvanceOrder)
	orders.Patch("/:id/status", cfg.Orders.UpdateOrderStatus)

	tickets := protected.Group("/tickets", auth.RequireView(auth.ViewTickets))
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Post("/:id/advance", cfg.Tickets.AdvanceTicket)

	reconciliations := protected.Group("/reconciliations", auth.RequireView(auth.ViewReconciliation))
	reconciliations.Get("/", cfg.Reconciliations.ListRecords)
	reconciliations.Get("/summary", cfg.Reconciliations.Summary)
	reconciliations.Post("/reconcile", cfg.Reconciliations.Reconcile)

	admin := protected.Group("/admin", auth.RequireView(auth.ViewAdminPanel))
	admin.Get("/operators", cfg.Admin.ListOperators)
	admin.Patch("/operators/:id/role", cfg.Admin.ChangeRole)
}
