package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiered-support/support-desk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Tickets   *handlers.TicketsHandler
	Pages     *handlers.PagesHandler
	Static    fiber.Handler
	RateLimit fiber.Handler
	Metrics   *prometheus.Registry
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics, promhttp.HandlerOpts{})))
	}

	if cfg.Static != nil {
		app.Use("/static", cfg.Static)
	}

	app.Get("/", cfg.Pages.Landing)
	app.Get("/tickets/:tier", cfg.Pages.TicketPage)

	api := app.Group("/api")
	if cfg.RateLimit != nil {
		api.Post("/tickets", cfg.RateLimit, cfg.Tickets.CreateTicket)
	} else {
		api.Post("/tickets", cfg.Tickets.CreateTicket)
	}

	app.Use(cfg.Pages.NotFound)
}
