package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/handler"
	"github.com/iliyamo/airline-seat-reservation/internal/middleware"
	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// RegisterAdmin registers the operator endpoints under /v1/admin.
// Every route requires a valid token carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	// Fleet and route setup.
	g.POST("/aircrafts", h.CreateAircraft)
	g.POST("/airports", h.CreateAirport)

	// Flight lifecycle: scheduling generates the seat map and stats
	// row atomically with the flight itself.
	g.POST("/flights", h.CreateFlight)
	g.POST("/flights/:id/delay", h.DelayFlight)
	g.GET("/flights/:id/stats", h.FlightStats)

	// Marketing content.
	g.POST("/promotions", h.CreatePromotion)
	g.DELETE("/promotions/:id", h.DeletePromotion)
	g.POST("/news", h.CreateNews)
	g.PUT("/news/:id", h.UpdateNews)
	g.DELETE("/news/:id", h.DeleteNews)
}
