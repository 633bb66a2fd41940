package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints:
// flight search, destination suggestions, seat maps and the news
// page.  The cache middleware wraps only the news page and the
// suggestion feed; search and seat availability must always reflect
// committed bookings, so they are never served from cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	// One-way and round-trip search, filtered by live availability.
	e.GET("/v1/flights/search", p.SearchFlights)
	e.GET("/v1/flights/search/round-trip", p.SearchRoundTrip)

	// Cabin layout and per-class open seat count for one flight.
	e.GET("/v1/flights/:id/seats", p.FlightSeats)
	e.GET("/v1/flights/:id/availability", p.SeatAvailability)

	// Marketing surfaces tolerate short staleness.
	e.GET("/v1/suggestions", p.Suggest, cache)
	e.GET("/v1/news", p.News, cache)
}
