package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amintouch/ledger-api/internal/application/analytics"
	"github.com/amintouch/ledger-api/internal/application/auth"
	"github.com/amintouch/ledger-api/internal/application/cashflow"
	"github.com/amintouch/ledger-api/internal/application/reports"
	"github.com/amintouch/ledger-api/internal/application/ticketing"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/infrastructure/memory"
	"github.com/amintouch/ledger-api/internal/infrastructure/notify"
	infrapdf "github.com/amintouch/ledger-api/internal/infrastructure/pdf"
	httpRouter "github.com/amintouch/ledger-api/internal/interfaces/http"
	"github.com/amintouch/ledger-api/pkg/config"
	"github.com/amintouch/ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	users, err := memory.SeedUsers()
	if err != nil {
		log.Fatal().Err(err).Msg("seed users")
	}
	userRepo := memory.NewUserRepository(users)
	entryRepo := memory.NewCashFlowRepository()
	ticketRepo := memory.NewTicketRepository()

	// Notifications: relay fans events out to connected admin dashboards,
	// the dispatcher also mails the admin.
	adminName := "Admin"
	for _, u := range users {
		if u.Role == entity.RoleAdmin {
			adminName = u.Name
			break
		}
	}
	relay := notify.NewRelay(cfg.Notify.BufferSize)
	mailer := notify.NewLogMailer(log, cfg.Report.AdminEmail)
	dispatcher := notify.NewDispatcher(relay, mailer, adminName, cfg.Report.AdminEmail)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	entryUC := cashflow.NewUseCase(entryRepo, userRepo, dispatcher)
	ticketUC := ticketing.NewUseCase(ticketRepo, userRepo, dispatcher)
	dashboardUC := analytics.NewDashboardUseCase(entryRepo, userRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.Report.CompanyName, cfg.Report.Currency)
	reportUC := reports.NewUseCase(entryRepo, ticketRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // ticket copies arrive as data URLs
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EntryUC:     entryUC,
		TicketUC:    ticketUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Relay:       relay,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
