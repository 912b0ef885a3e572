package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. The auth middleware is pass-through; the
// RequireUser/RequireAdmin guards do the rejecting.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/api/auth", cfg.AuthMiddleware.Handle)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", auth.RequireUser(), cfg.Auth.Me)
	authGroup.Post("/logout", cfg.Auth.Logout)

	tickets := app.Group("/ticket/ticketsubmit", cfg.AuthMiddleware.Handle)
	tickets.Post("/submit", auth.RequireUser(), cfg.Tickets.Submit)
	tickets.Get("/get", auth.RequireAdmin(), cfg.Tickets.List)
	tickets.Put("/update/:id", auth.RequireAdmin(), cfg.Tickets.Update)
	tickets.Delete("/delete/:id", auth.RequireAdmin(), cfg.Tickets.Delete)
}
