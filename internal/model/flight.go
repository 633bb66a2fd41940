package model

import "time"

// Flight is a single scheduled trip between two airports on a
// specific aircraft.  UpdatedDepartureTime starts equal to
// DepartureTime and moves when the operator records a delay; search
// matches against either value.  The aircraft reference is immutable
// once the seat map has been generated.
type Flight struct {
	ID                   uint64    `json:"flight_id"`              // flights.flight_id
	AircraftID           uint64    `json:"aircraft_id"`            // flights.aircraft_id
	DepartureAirport     uint64    `json:"departure_airport"`      // flights.departure_airport
	ArrivalAirport       uint64    `json:"arrival_airport"`        // flights.arrival_airport
	DepartureTime        time.Time `json:"departure_time"`         // flights.departure_time
	ArrivalTime          time.Time `json:"arrival_time"`           // flights.arrival_time
	UpdatedDepartureTime time.Time `json:"updated_departure_time"` // flights.updated_departure_time
	BasePriceCents       uint32    `json:"base_price_cents"`       // flights.base_price_cents
	DelayReason          *string   `json:"delay_reason,omitempty"` // flights.delay_reason (nullable)
	CreatedAt            time.Time `json:"created_at"`             // flights.created_at
}
