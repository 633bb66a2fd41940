package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/repository"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// AdminHandler serves the operator endpoints: fleet and route setup,
// flight scheduling, delays, statistics, promotions and news.  All of
// its routes sit behind the ADMIN role check.
type AdminHandler struct {
	Fleet *service.FleetService
	Store *repository.Store
}

// NewAdminHandler builds an AdminHandler.
func NewAdminHandler(fleet *service.FleetService, store *repository.Store) *AdminHandler {
	return &AdminHandler{Fleet: fleet, Store: store}
}

type createAircraftRequest struct {
	Manufacturer    string `json:"manufacturer"`
	Model           string `json:"model"`
	Capacity        int    `json:"capacity"`
	EconomySeats    int    `json:"economy_seats"`
	BusinessSeats   int    `json:"business_seats"`
	FirstClassSeats int    `json:"first_class_seats"`
}

// CreateAircraft registers an airframe configuration.  The per-class
// seat counts must not exceed capacity; they drive every seat map
// later generated for flights on this aircraft.
func (h *AdminHandler) CreateAircraft(c echo.Context) error {
	var req createAircraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Manufacturer) == "" || strings.TrimSpace(req.Model) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "manufacturer and model are required"})
	}
	if req.Capacity <= 0 || req.EconomySeats < 0 || req.BusinessSeats < 0 || req.FirstClassSeats < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat counts must be non-negative and capacity positive"})
	}
	if req.EconomySeats+req.BusinessSeats+req.FirstClassSeats > req.Capacity {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "class seat counts exceed capacity"})
	}

	a := model.Aircraft{
		Manufacturer:    strings.TrimSpace(req.Manufacturer),
		Model:           strings.TrimSpace(req.Model),
		Capacity:        req.Capacity,
		EconomySeats:    req.EconomySeats,
		BusinessSeats:   req.BusinessSeats,
		FirstClassSeats: req.FirstClassSeats,
	}
	if err := h.Store.Aircraft.Create(c.Request().Context(), &a); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

type createAirportRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
}

// CreateAirport registers an airport.  Location is the city name that
// search queries match against.
func (h *AdminHandler) CreateAirport(c echo.Context) error {
	var req createAirportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Location) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location are required"})
	}

	a := model.Airport{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Country:  strings.TrimSpace(req.Country),
	}
	if err := h.Store.Airports.Create(c.Request().Context(), &a); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

type createFlightRequest struct {
	AircraftID       uint64 `json:"aircraft_id"`
	DepartureAirport uint64 `json:"departure_airport"`
	ArrivalAirport   uint64 `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	BasePriceCents   uint32 `json:"base_price_cents"`
}

// CreateFlight schedules a flight.  The seat map and a zeroed stats
// row are created together with the flight row in one transaction.
func (h *AdminHandler) CreateFlight(c echo.Context) error {
	var req createFlightRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	dep, okDep := parseDate(req.DepartureTime)
	arr, okArr := parseDate(req.ArrivalTime)
	if !okDep || !okArr {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "departure_time and arrival_time must be valid timestamps"})
	}
	if !arr.After(dep) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "arrival_time must be after departure_time"})
	}

	f := model.Flight{
		AircraftID:       req.AircraftID,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureTime:    dep,
		ArrivalTime:      arr,
		BasePriceCents:   req.BasePriceCents,
	}
	if err := h.Fleet.CreateFlight(c.Request().Context(), &f); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

type delayFlightRequest struct {
	Reason       string `json:"reason"`
	NewDeparture string `json:"new_departure"`
}

// DelayFlight records a delay.  The scheduled departure is kept; only
// the current departure moves.
func (h *AdminHandler) DelayFlight(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	var req delayFlightRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	dep, okDep := parseDate(req.NewDeparture)
	if !okDep {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "new_departure must be a valid timestamp"})
	}

	if err := h.Fleet.Delay(c.Request().Context(), id, req.Reason, dep); err != nil {
		return respondErr(c, err)
	}
	flight, err := h.Store.Flights.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, flight)
}

// FlightStats returns the running ticket and revenue totals for a
// flight.
func (h *AdminHandler) FlightStats(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	stats, err := h.Fleet.Summarize(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
