package model

// Aircraft describes an airframe configuration operated by the
// airline.  The per-class seat counts drive seat map generation when
// a flight is scheduled on this aircraft; their sum never exceeds
// Capacity.
type Aircraft struct {
	ID              uint64 `json:"aircraft_id"`       // aircrafts.aircraft_id
	Manufacturer    string `json:"manufacturer"`      // aircrafts.manufacturer
	Model           string `json:"model"`             // aircrafts.model
	Capacity        int    `json:"capacity"`          // aircrafts.capacity
	EconomySeats    int    `json:"economy_seats"`     // aircrafts.economy_seats
	BusinessSeats   int    `json:"business_seats"`    // aircrafts.business_seats
	FirstClassSeats int    `json:"first_class_seats"` // aircrafts.first_class_seats
}
