// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Reservation event actions.
const (
	ActionConfirmed = "confirmed"
	ActionCancelled = "cancelled"
)

// ReservationEvent is published after a booking or cancellation
// transaction commits.  It carries enough information for downstream
// consumers to log, notify, or feed analytics without querying the
// primary database.
type ReservationEvent struct {
	Action        string   `json:"action"`
	ReservationID uint64   `json:"reservation_id"`
	CustomerID    uint64   `json:"customer_id,omitempty"`
	FlightID      uint64   `json:"flight_id"`
	Seats         []string `json:"seats"`
	AmountCents   int64    `json:"amount_cents"`
	OccurredAt    string   `json:"occurred_at"`
}
