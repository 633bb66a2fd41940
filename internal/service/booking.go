package service

import (
	"context"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// BookingService runs the reservation workflow.  Book and Cancel each
// execute as one isolated transaction: the availability check, the
// seat flip, the reservation/ticket writes and the statistics deltas
// commit together or not at all.
type BookingService struct {
	store UnitOfWork
}

// NewBookingService returns a BookingService backed by the given store.
func NewBookingService(store UnitOfWork) *BookingService {
	return &BookingService{store: store}
}

// BookingResult is returned from a successful Book call.
type BookingResult struct {
	Reservation model.Reservation `json:"reservation"`
	Ticket      model.Ticket      `json:"ticket"`
}

// CancelResult summarizes what a Cancel call undid.
type CancelResult struct {
	ReservationID uint64   `json:"reservation_id"`
	FlightID      uint64   `json:"flight_id"`
	Seats         []string `json:"seats"`
	RefundCents   int64    `json:"refund_cents"`
}

// Book reserves one seat on a flight for a customer.  The target seat
// must exist under the given flight and class and still be Available;
// anything else fails with ErrSeatUnavailable.  Two concurrent calls
// for the same seat cannot both succeed: the row lock taken by the
// seat lookup plus the conditional status flip guarantee exactly one
// winner, and the loser fails fast instead of retrying.
func (s *BookingService) Book(ctx context.Context, customerID, flightID uint64, seatNumber, class string, priceCents uint32, bookedAt time.Time) (*BookingResult, error) {
	if customerID == 0 || flightID == 0 || seatNumber == "" || !model.ValidClass(class) {
		return nil, ErrValidation
	}
	if bookedAt.IsZero() {
		bookedAt = time.Now().UTC()
	}

	var out BookingResult
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		seat, err := tx.SeatAssignment(ctx, flightID, seatNumber, class)
		if err != nil {
			return err
		}
		if seat.Status != model.SeatAvailable {
			return ErrSeatUnavailable
		}

		res := model.Reservation{
			CustomerID:  customerID,
			FlightID:    flightID,
			BookingDate: bookedAt,
			Status:      model.ReservationConfirmed,
		}
		if err := tx.CreateReservation(ctx, &res); err != nil {
			return err
		}

		ticket := model.Ticket{
			ReservationID: res.ID,
			SeatNumber:    seatNumber,
			Class:         class,
			PriceCents:    priceCents,
			Status:        model.TicketActive,
		}
		if err := tx.CreateTicket(ctx, &ticket); err != nil {
			return err
		}

		booked, err := tx.MarkSeatBooked(ctx, flightID, seatNumber, class)
		if err != nil {
			return err
		}
		if !booked {
			// Lost the race: someone flipped the seat between our read
			// and the conditional update.
			return ErrSeatUnavailable
		}

		if err := tx.AdjustFlightStats(ctx, flightID, 1, int64(priceCents), bookedAt); err != nil {
			return err
		}

		out = BookingResult{Reservation: res, Ticket: ticket}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel reverses a booking in full: the reservation and its tickets
// become Cancelled, every seat the booking took goes back to
// Available, and the flight statistics lose exactly the ticket count
// and revenue the booking added.  A reservation that is already
// Cancelled is rejected with ErrAlreadyCancelled so the statistics
// are never decremented twice.
func (s *BookingService) Cancel(ctx context.Context, reservationID uint64) (*CancelResult, error) {
	if reservationID == 0 {
		return nil, ErrValidation
	}

	var out CancelResult
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		res, err := tx.ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.Status == model.ReservationCancelled {
			return ErrAlreadyCancelled
		}

		tickets, err := tx.TicketsByReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if len(tickets) == 0 {
			// A confirmed reservation without tickets is corrupt state;
			// treat it as absent rather than adjusting stats for nothing.
			return ErrReservationNotFound
		}

		refs := make([]model.SeatRef, 0, len(tickets))
		seats := make([]string, 0, len(tickets))
		var refund int64
		for _, t := range tickets {
			refs = append(refs, model.SeatRef{SeatNumber: t.SeatNumber, Class: t.Class})
			seats = append(seats, t.SeatNumber)
			refund += int64(t.PriceCents)
		}

		if err := tx.MarkReservationCancelled(ctx, reservationID); err != nil {
			return err
		}
		if err := tx.MarkTicketsCancelled(ctx, reservationID); err != nil {
			return err
		}
		if err := tx.ReleaseSeats(ctx, res.FlightID, refs); err != nil {
			return err
		}
		if err := tx.AdjustFlightStats(ctx, res.FlightID, -int64(len(tickets)), -refund, time.Time{}); err != nil {
			return err
		}

		out = CancelResult{
			ReservationID: reservationID,
			FlightID:      res.FlightID,
			Seats:         seats,
			RefundCents:   refund,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
