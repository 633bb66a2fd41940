package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/repository"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// customerID extracts the authenticated customer's ID from the JWT
// claims placed in context by the JWTAuth middleware.  JSON numbers
// arrive as float64; string subjects are tolerated too.
func customerID(c echo.Context) (uint64, error) {
	switch v := c.Get("user_id").(type) {
	case float64:
		if v > 0 {
			return uint64(v), nil
		}
	case string:
		if id, err := strconv.ParseUint(v, 10, 64); err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, errors.New("unauthorized")
}

// respondErr maps the engine's failure taxonomy onto HTTP statuses.
// The error kind survives the boundary in the response body; anything
// outside the taxonomy is reported as a generic database error.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrSeatUnavailable),
		errors.Is(err, service.ErrAlreadyCancelled):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrFlightNotFound),
		errors.Is(err, service.ErrAircraftNotFound),
		errors.Is(err, service.ErrNoFlights),
		errors.Is(err, repository.ErrPromotionNotFound),
		errors.Is(err, repository.ErrNewsNotFound),
		errors.Is(err, repository.ErrAirportNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// parseDate accepts RFC3339, "2006-01-02 15:04:05" and plain
// "2006-01-02" timestamps from clients.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
