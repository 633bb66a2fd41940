package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/handler"
	"github.com/iliyamo/airline-seat-reservation/internal/middleware"
	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// RegisterCustomer registers the authenticated booking endpoints.
// Admins are allowed through as well so support staff can manage
// bookings on a customer's behalf.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleCustomer, model.RoleAdmin))

	g.POST("/reservations", h.Book)
	g.POST("/reservations/:id/cancel", h.Cancel)
	g.GET("/reservations", h.MyReservations)
}
