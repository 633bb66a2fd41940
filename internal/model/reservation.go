package model

import "time"

// Reservation statuses.  The only legal transition is
// Confirmed -> Cancelled; a cancelled reservation is terminal.
const (
	ReservationConfirmed = "Confirmed"
	ReservationCancelled = "Cancelled"
)

// Reservation groups the tickets a customer booked on one flight in a
// single transaction.
type Reservation struct {
	ID          uint64    `json:"reservation_id"` // reservations.reservation_id
	CustomerID  uint64    `json:"customer_id"`    // reservations.customer_id
	FlightID    uint64    `json:"flight_id"`      // reservations.flight_id
	BookingDate time.Time `json:"booking_date"`   // reservations.booking_date
	Status      string    `json:"status"`         // reservations.status
}
