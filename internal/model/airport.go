package model

// Airport identifies one end of a flight route.  Location is the
// city name used by search queries; Country is informational.
type Airport struct {
	ID       uint64 `json:"airport_id"` // airports.airport_id
	Name     string `json:"name"`       // airports.name
	Location string `json:"location"`   // airports.location
	Country  string `json:"country"`    // airports.country
}
