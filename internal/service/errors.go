// Package service implements the seat-inventory and reservation
// engine: seat map generation, availability search, promotion
// selection, and the booking/cancellation workflow.  Persistence is
// reached through small port interfaces declared next to each
// consumer so the engine owns no database details; the repository
// package provides the MySQL implementation.
package service

import "errors"

// Sentinel errors forming the engine's failure taxonomy.  Handlers
// compare with errors.Is and translate each kind to an HTTP status;
// the kind itself is never collapsed on the way out.
var (
	// ErrValidation reports malformed or missing required input.
	ErrValidation = errors.New("invalid input")

	// ErrSeatUnavailable covers a missing seat, a class mismatch and a
	// seat that is already Booked, including losing a booking race.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrAlreadyCancelled rejects cancelling a reservation twice.
	// Without this guard a second cancel would double-decrement the
	// flight statistics.
	ErrAlreadyCancelled = errors.New("reservation already cancelled")

	// ErrReservationNotFound is returned when a reservation does not
	// exist or carries no tickets (already-invalid state).
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrFlightNotFound is returned when a flight lookup yields nothing.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrAircraftNotFound is returned when a flight references an
	// unknown aircraft.
	ErrAircraftNotFound = errors.New("aircraft not found")

	// ErrNoFlights is returned by search and suggestion when nothing
	// matches the query.
	ErrNoFlights = errors.New("no matching flights")
)
