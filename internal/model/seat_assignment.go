package model

// Seat classes partition both pricing and seat geography.  The raw
// strings are stored verbatim in the database, so they must not change.
const (
	ClassEconomy  = "Economy"
	ClassBusiness = "Business"
	ClassFirst    = "First"
)

// Seat types describe the physical position within a row.
const (
	SeatTypeWindow = "Window"
	SeatTypeMiddle = "Middle"
	SeatTypeAisle  = "Aisle"
)

// Seat assignment statuses.  A seat only ever moves between these two
// values; booking flips Available -> Booked and cancellation flips it
// back.
const (
	SeatAvailable = "Available"
	SeatBooked    = "Booked"
)

// ValidClass reports whether s is one of the three seat classes.
func ValidClass(s string) bool {
	return s == ClassEconomy || s == ClassBusiness || s == ClassFirst
}

// SeatAssignment is one physical seat on one flight.  Rows are
// created in bulk when the flight's seat map is generated and exist
// for the lifetime of the flight.  A seat number such as "B4" is
// unique within its class on a flight.
type SeatAssignment struct {
	ID         uint64 `json:"seat_id"`     // seat_assignments.seat_id
	FlightID   uint64 `json:"flight_id"`   // seat_assignments.flight_id
	SeatNumber string `json:"seat_number"` // seat_assignments.seat_number
	Class      string `json:"class"`       // seat_assignments.class
	SeatType   string `json:"seat_type"`   // seat_assignments.seat_type
	Status     string `json:"status"`      // seat_assignments.status
}

// SeatRef names a seat within a flight by label and class.  It is the
// unit cancellation uses to release exactly the seats a booking took.
type SeatRef struct {
	SeatNumber string `json:"seat_number"`
	Class      string `json:"class"`
}
