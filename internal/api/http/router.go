package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equipment-support/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Requests     *handlers.RequestsHandler
	Technicians  *handlers.TechniciansHandler
	Knowledge    *handlers.KnowledgeHandler
	SystemStatus *handlers.SystemStatusHandler
	Stats        *handlers.StatsHandler
	Alerts       *handlers.AlertsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/support-requests", cfg.Requests.List)
	api.Post("/support-requests", cfg.Requests.Create)
	api.Get("/support-requests/:id", cfg.Requests.Get)
	api.Patch("/support-requests/:id", cfg.Requests.Update)

	api.Get("/technicians", cfg.Technicians.List)
	api.Post("/technicians", cfg.Technicians.Create)
	api.Patch("/technicians/:id", cfg.Technicians.Update)

	api.Get("/knowledge-base", cfg.Knowledge.List)

	api.Get("/system-status", cfg.SystemStatus.List)
	api.Patch("/system-status/:id", cfg.SystemStatus.Update)

	api.Get("/dashboard-stats", cfg.Stats.Get)

	api.Post("/emergency-alert", cfg.Alerts.EmergencyAlert)
	api.Post("/integration-webhook", cfg.Alerts.IntegrationWebhook)
}
