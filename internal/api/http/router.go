package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/http/handlers"
	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Auth             *handlers.AuthHandler
	Products         *handlers.ProductsHandler
	Orders           *handlers.OrdersHandler
	Reviews          *handlers.ReviewsHandler
	Updates          *handlers.UpdatesHandler
	Tickets          *handlers.TicketsHandler
	Users            *handlers.UsersHandler
	PasswordRequests *handlers.PasswordRequestsHandler
	QR               *handlers.QRHandler
	AuthMiddleware   *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)

	api.Get("/products", cfg.Products.List)
	api.Get("/reviews", cfg.Reviews.List)
	api.Get("/updates", cfg.Updates.List)
	api.Post("/qr-generate", cfg.QR.Generate)

	authed := api.Group("", cfg.AuthMiddleware.Handle)

	authed.Post("/products", auth.RequireAdmin(), cfg.Products.Create)
	authed.Patch("/products/:id", auth.RequireAdmin(), cfg.Products.Update)

	authed.Post("/orders", cfg.Orders.Create)
	authed.Get("/orders", cfg.Orders.List)
	authed.Patch("/orders/:id/status", auth.RequirePermission(auth.PermissionManageOrders), cfg.Orders.UpdateStatus)

	authed.Post("/reviews", cfg.Reviews.Create)
	authed.Post("/updates", cfg.Updates.Create)

	authed.Post("/tickets", cfg.Tickets.Create)
	authed.Get("/tickets", cfg.Tickets.List)
	authed.Get("/tickets/:id", cfg.Tickets.Get)
	authed.Patch("/tickets/:id/status", auth.RequirePermission(auth.PermissionManageTickets), cfg.Tickets.UpdateStatus)
	authed.Post("/tickets/:id/messages", cfg.Tickets.AddMessage)
	authed.Get("/tickets/:id/messages", cfg.Tickets.ListMessages)

	authed.Get("/users", auth.RequirePermission(auth.PermissionManageUsers), cfg.Users.List)
	authed.Patch("/users/:id/ban", auth.RequirePermission(auth.PermissionManageUsers), cfg.Users.Ban)

	authed.Get("/password-requests", auth.RequirePermission(auth.PermissionManageUsers), cfg.PasswordRequests.ListPending)
	authed.Post("/password-requests", cfg.PasswordRequests.Create)
	authed.Patch("/password-requests/:id", auth.RequirePermission(auth.PermissionManageUsers), cfg.PasswordRequests.Process)
}
