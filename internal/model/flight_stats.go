package model

import "time"

// FlightStats is the running aggregate of sold tickets and revenue
// for one flight.  It is adjusted incrementally inside the same
// transaction as every booking and cancellation and is never
// recomputed by scanning tickets on the hot path.  Invariant:
// TotalTickets equals the number of Active tickets on the flight and
// TotalRevenueCents the sum of their prices.
type FlightStats struct {
	FlightID          uint64    `json:"flight_id"`           // flight_stats.flight_id
	TotalTickets      int64     `json:"total_tickets"`       // flight_stats.total_tickets
	TotalRevenueCents int64     `json:"total_revenue_cents"` // flight_stats.total_revenue_cents
	LastUpdated       time.Time `json:"last_updated"`        // flight_stats.last_updated
}
