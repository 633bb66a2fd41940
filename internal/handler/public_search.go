package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/repository"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// PublicHandler serves the unauthenticated endpoints: flight search,
// destination suggestions, seat maps and the news page.
type PublicHandler struct {
	Search *service.SearchService
	Fleet  *service.FleetService
	Store  *repository.Store
}

// NewPublicHandler builds a PublicHandler.
func NewPublicHandler(search *service.SearchService, fleet *service.FleetService, store *repository.Store) *PublicHandler {
	return &PublicHandler{Search: search, Fleet: fleet, Store: store}
}

// searchQueryFrom reads the shared one-way search parameters.  The
// class defaults to Economy and the party size to one.
func searchQueryFrom(c echo.Context) (service.SearchQuery, string) {
	q := service.SearchQuery{
		From:    c.QueryParam("from"),
		To:      c.QueryParam("to"),
		Persons: 1,
		Class:   model.ClassEconomy,
	}
	date, ok := parseDate(c.QueryParam("date"))
	if !ok {
		return q, "date must be a valid timestamp"
	}
	q.Date = date
	if raw := c.QueryParam("persons"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, "persons must be a positive integer"
		}
		q.Persons = n
	}
	if raw := strings.TrimSpace(c.QueryParam("class")); raw != "" {
		q.Class = raw
	}
	return q, ""
}

// SearchFlights answers a one-way search.  A flight qualifies when
// its route matches, either departure time equals the date, and it
// has strictly more open seats of the class than the party size.
func (h *PublicHandler) SearchFlights(c echo.Context) error {
	q, msg := searchQueryFrom(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	results, err := h.Search.Search(c.Request().Context(), q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"flights": results})
}

// SearchRoundTrip answers a two-way search.  Both legs must have
// matches for the call to succeed.
func (h *PublicHandler) SearchRoundTrip(c echo.Context) error {
	q, msg := searchQueryFrom(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	returnDate, ok := parseDate(c.QueryParam("return_date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "return_date must be a valid timestamp"})
	}
	result, err := h.Search.SearchRoundTrip(c.Request().Context(), q, returnDate)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Suggest lists destinations reachable from an origin city together
// with base fares and any promotion running right now.
func (h *PublicHandler) Suggest(c echo.Context) error {
	options, err := h.Search.Suggest(c.Request().Context(), c.QueryParam("from"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"destinations": options})
}

// News returns the public news page: articles and promotions, newest
// first.
func (h *PublicHandler) News(c echo.Context) error {
	ctx := c.Request().Context()
	articles, err := h.Store.News.ListAll(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	promos, err := h.Store.Promotions.ListAll(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"news":       articles,
		"promotions": promos,
	})
}

// FlightSeats returns the full seat map of a flight, booked seats
// included, so clients can render the cabin.
func (h *PublicHandler) FlightSeats(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	// Resolve the flight first so an unknown ID is a 404, not an
	// empty seat list.
	flight, err := h.Store.Flights.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	seats, err := h.Store.Seats.ListByFlight(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"flight": flight,
		"seats":  seats,
	})
}

// SeatAvailability reports how many seats of a class are open on a
// flight right now.
func (h *PublicHandler) SeatAvailability(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	class := strings.TrimSpace(c.QueryParam("class"))
	if class == "" {
		class = model.ClassEconomy
	}
	count, err := h.Fleet.SeatAvailability(c.Request().Context(), id, class)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"flight_id": id,
		"class":     class,
		"available": count,
	})
}
