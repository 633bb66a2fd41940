package service

import (
	"context"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// Tx is the unit of work the engine mutates state through.  Every
// method runs against the same database transaction; the enclosing
// WithinTx call commits all of them or none.
type Tx interface {
	// AircraftByID returns the aircraft or ErrAircraftNotFound.
	AircraftByID(ctx context.Context, id uint64) (*model.Aircraft, error)

	// CreateFlight inserts the flight and populates its ID.
	CreateFlight(ctx context.Context, f *model.Flight) error

	// CreateSeatAssignments bulk-inserts a generated seat map.
	CreateSeatAssignments(ctx context.Context, seats []model.SeatAssignment) error

	// CreateFlightStats inserts the zeroed stats row for a new flight.
	CreateFlightStats(ctx context.Context, s *model.FlightStats) error

	// SeatAssignment loads one seat by flight, label and class,
	// locking the row for the rest of the transaction.  Returns
	// ErrSeatUnavailable when no such seat exists.
	SeatAssignment(ctx context.Context, flightID uint64, seatNumber, class string) (*model.SeatAssignment, error)

	// MarkSeatBooked flips the seat to Booked only if it is still
	// Available.  The false return means another booking won the race.
	MarkSeatBooked(ctx context.Context, flightID uint64, seatNumber, class string) (bool, error)

	// ReleaseSeats flips the referenced seats back to Available.
	ReleaseSeats(ctx context.Context, flightID uint64, refs []model.SeatRef) error

	// CreateReservation inserts the reservation and populates its ID.
	CreateReservation(ctx context.Context, r *model.Reservation) error

	// CreateTicket inserts the ticket and populates its ID.
	CreateTicket(ctx context.Context, t *model.Ticket) error

	// ReservationByID loads and locks a reservation, or returns
	// ErrReservationNotFound.
	ReservationByID(ctx context.Context, id uint64) (*model.Reservation, error)

	// TicketsByReservation lists every ticket under a reservation.
	TicketsByReservation(ctx context.Context, reservationID uint64) ([]model.Ticket, error)

	// MarkReservationCancelled sets the reservation status to Cancelled.
	MarkReservationCancelled(ctx context.Context, id uint64) error

	// MarkTicketsCancelled sets every ticket of the reservation to Cancelled.
	MarkTicketsCancelled(ctx context.Context, reservationID uint64) error

	// AdjustFlightStats adds the deltas to the flight's running
	// totals.  A zero "at" leaves last_updated untouched.
	AdjustFlightStats(ctx context.Context, flightID uint64, deltaTickets, deltaRevenueCents int64, at time.Time) error
}

// UnitOfWork runs fn inside one database transaction.  An error from
// fn rolls everything back and is returned unchanged.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
