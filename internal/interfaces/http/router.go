package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amintouch/ledger-api/internal/application/analytics"
	"github.com/amintouch/ledger-api/internal/application/auth"
	"github.com/amintouch/ledger-api/internal/application/cashflow"
	"github.com/amintouch/ledger-api/internal/application/reports"
	"github.com/amintouch/ledger-api/internal/application/ticketing"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/infrastructure/notify"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	EntryUC     *cashflow.UseCase
	TicketUC    *ticketing.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.UseCase
	Relay       *notify.Relay
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Staff directory (admin dropdowns)
	protected.Get("/staff", RequireRole(entity.RoleAdmin), authHandler.ListStaff)

	// Cash-flow entries: creation and mutation are staff actions, listing is
	// role-scoped inside the handler.
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries := protected.Group("/entries")
	entries.Get("/", entryHandler.List)
	entries.Post("/", RequireRole(entity.RoleStaff), entryHandler.Create)
	entries.Put("/:id", RequireRole(entity.RoleStaff), entryHandler.Update)
	entries.Delete("/:id", RequireRole(entity.RoleStaff), entryHandler.Delete)

	// Ticket entries
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets := protected.Group("/tickets")
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", RequireRole(entity.RoleStaff), ticketHandler.Create)
	tickets.Put("/:id", RequireRole(entity.RoleStaff), ticketHandler.Update)
	tickets.Delete("/:id", RequireRole(entity.RoleStaff), ticketHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/chart", dashboardHandler.Chart)

	// PDF downloads
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/invoice", reportHandler.Invoice)
	reportsGroup.Get("/tickets", reportHandler.Tickets)

	// Live notifications (admin only)
	notificationHandler := NewNotificationHandler(deps.Relay)
	protected.Get("/notifications/stream", RequireRole(entity.RoleAdmin), notificationHandler.Stream)
}
