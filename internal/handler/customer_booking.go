package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/queue"
	"github.com/iliyamo/airline-seat-reservation/internal/repository"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// CustomerHandler serves the authenticated booking endpoints.
type CustomerHandler struct {
	Booking *service.BookingService
	Store   *repository.Store
}

// NewCustomerHandler builds a CustomerHandler.
func NewCustomerHandler(booking *service.BookingService, store *repository.Store) *CustomerHandler {
	return &CustomerHandler{Booking: booking, Store: store}
}

type bookRequest struct {
	FlightID   uint64  `json:"flight_id"`
	SeatNumber string  `json:"seat_number"`
	Class      string  `json:"class"`
	PriceCents *uint32 `json:"price_cents"`
}

// Book reserves one seat on a flight for the authenticated customer.
// When price_cents is omitted the fare is computed server-side from
// the flight's base price and the best discount active on the
// departure date.  An explicit zero is honored as a zero-fare ticket
// (award bookings), so the field is a pointer to tell the two apart.
func (h *CustomerHandler) Book(c echo.Context) error {
	custID, err := customerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	var price uint32
	if req.PriceCents != nil {
		price = *req.PriceCents
	} else {
		price, err = h.quote(ctx, req.FlightID)
		if err != nil {
			return respondErr(c, err)
		}
	}

	result, err := h.Booking.Book(ctx, custID, req.FlightID, req.SeatNumber, req.Class, price, time.Now().UTC())
	if err != nil {
		return respondErr(c, err)
	}

	h.publish(queue.ReservationEvent{
		Action:        queue.ActionConfirmed,
		ReservationID: result.Reservation.ID,
		CustomerID:    custID,
		FlightID:      req.FlightID,
		Seats:         []string{result.Ticket.SeatNumber},
		AmountCents:   int64(result.Ticket.PriceCents),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, result)
}

// quote prices one seat: the base fare discounted by the best
// promotion whose window covers the flight's current departure.
func (h *CustomerHandler) quote(ctx context.Context, flightID uint64) (uint32, error) {
	if flightID == 0 {
		return 0, service.ErrValidation
	}
	flight, err := h.Store.Flights.GetByID(ctx, flightID)
	if err != nil {
		return 0, err
	}
	price := flight.BasePriceCents
	rate, ok, err := h.Store.Promotions.BestDiscountAt(ctx, flightID, flight.UpdatedDepartureTime)
	if err != nil {
		return 0, err
	}
	if ok {
		price = uint32(float64(price) * (1 - rate))
	}
	return price, nil
}

// Cancel reverses one of the customer's bookings.  Admins may cancel
// any reservation; customers only their own.
func (h *CustomerHandler) Cancel(c echo.Context) error {
	custID, err := customerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	ctx := c.Request().Context()
	res, err := h.Store.Reservations.GetByID(ctx, id)
	if err != nil {
		return respondErr(c, err)
	}
	if role, _ := c.Get("role").(string); role != model.RoleAdmin && res.CustomerID != custID {
		// Hide other customers' reservations entirely.
		return c.JSON(http.StatusNotFound, echo.Map{"error": service.ErrReservationNotFound.Error()})
	}

	result, err := h.Booking.Cancel(ctx, id)
	if err != nil {
		return respondErr(c, err)
	}

	h.publish(queue.ReservationEvent{
		Action:        queue.ActionCancelled,
		ReservationID: result.ReservationID,
		CustomerID:    res.CustomerID,
		FlightID:      result.FlightID,
		Seats:         result.Seats,
		AmountCents:   result.RefundCents,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, result)
}

// MyReservations lists the customer's bookings with flight, route and
// ticket details, newest first.
func (h *CustomerHandler) MyReservations(c echo.Context) error {
	custID, err := customerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	details, err := h.Store.Reservations.ListByCustomer(c.Request().Context(), custID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": details})
}

// publish sends a reservation event on a detached context.  The
// booking has already committed; a broker outage must not fail the
// request or hold it open.
func (h *CustomerHandler) publish(event queue.ReservationEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue.PublishReservationEvent(ctx, event)
	}()
}
