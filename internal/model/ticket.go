package model

// Ticket statuses mirror the owning reservation's status.
const (
	TicketActive    = "Active"
	TicketCancelled = "Cancelled"
)

// Ticket is the seat-level record inside a reservation, carrying its
// own price.  One ticket exists per (reservation, seat).
type Ticket struct {
	ID            uint64 `json:"ticket_id"`      // tickets.ticket_id
	ReservationID uint64 `json:"reservation_id"` // tickets.reservation_id
	SeatNumber    string `json:"seat_number"`    // tickets.seat_number
	Class         string `json:"class"`          // tickets.class
	PriceCents    uint32 `json:"price_cents"`    // tickets.price_cents
	Status        string `json:"status"`         // tickets.status
}
