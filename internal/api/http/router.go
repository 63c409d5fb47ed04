package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/triage-service/internal/api/http/handlers"
	"github.com/campus-kit/triage-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Operator       *handlers.OperatorHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/submitter/login", cfg.Auth.SubmitterLogin)
	authGroup.Post("/operator/login", cfg.Auth.OperatorLogin)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle, auth.RequireSubmitter())
	tickets.Post("/", cfg.Tickets.FileTicket)
	tickets.Get("/", cfg.Tickets.ListOwnTickets)

	operator := app.Group("/operator", cfg.AuthMiddleware.Handle, auth.RequireOperator())
	operator.Get("/tickets", cfg.Operator.ListTickets)
	operator.Get("/tickets/stats", cfg.Operator.Stats)
	operator.Get("/tickets/:id", cfg.Operator.GetTicket)
	operator.Post("/tickets/:id/transition", cfg.Operator.Transition)
}
