package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/api/http/handlers"
	"github.com/spec-kit/litreview/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Reviews        *handlers.ReviewsHandler
	Feed           *handlers.FeedHandler
	Subscriptions  *handlers.SubscriptionsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/feed", cfg.Feed.Feed)
	protected.Get("/posts", cfg.Feed.Posts)

	protected.Post("/tickets", cfg.Tickets.CreateTicket)
	protected.Post("/tickets/with-review", cfg.Tickets.CreateTicketWithReview)
	protected.Get("/tickets/:id", cfg.Tickets.GetTicket)
	protected.Put("/tickets/:id", cfg.Tickets.UpdateTicket)
	protected.Delete("/tickets/:id", cfg.Tickets.DeleteTicket)
	protected.Post("/tickets/:id/reviews", cfg.Tickets.AddReview)

	protected.Put("/reviews/:id", cfg.Reviews.UpdateReview)
	protected.Delete("/reviews/:id", cfg.Reviews.DeleteReview)

	protected.Get("/subscriptions", cfg.Subscriptions.List)
	protected.Post("/subscriptions", cfg.Subscriptions.Follow)
	protected.Delete("/subscriptions/:user_id", cfg.Subscriptions.Unfollow)
}
