// Package fiber adapts shopauth's HTTP surface onto Fiber v3.
package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/shopauth/shopauth"
)

type Adapter struct {
	app     *fiber.App
	handler shopauth.AuthHandler
	ttl     time.Duration
}

var _ shopauth.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(handler shopauth.AuthHandler, basePath string, sessionTTL time.Duration) error {
	a.handler = handler
	a.ttl = sessionTTL

	api := a.app.Group(basePath)

	// Public routes
	api.Post("/register", a.register)
	api.Post("/login", a.login)
	api.Post("/forgot-password", a.forgotPassword)
	api.Get("/reset-password/:token", a.showReset)
	api.Post("/reset-password/:token", a.completeReset)
	api.Get("/flash", a.flash)

	// Protected routes. Middleware runs before the handler.
	api.Post("/logout", a.logout, a.RequireAuth)
	api.Get("/session", a.session, a.RequireAuth)
	api.Post("/change-password", a.changePassword, a.RequireAuth)
	api.Post("/products/:id/like", a.toggleLike, a.RequireAuth)

	return nil
}
