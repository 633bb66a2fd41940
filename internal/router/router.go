// Package router wires HTTP routes to their handlers and middleware.
// Routes are grouped by audience: public browse endpoints, the
// authenticated customer booking endpoints and the ADMIN-only
// operator endpoints.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/handler"
)

// RegisterRoutes registers routes that carry no authentication at
// all.  Currently that is only the health check used by load
// balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration and login under /v1/auth.
// These endpoints issue tokens and therefore cannot require one.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}
