package service

import (
	"fmt"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// Seats per row for each cabin class.  The row letter advances every
// seatsPerRow seats: economy seat index 7 becomes B2, and so on.
const (
	economyRowWidth  = 6
	businessRowWidth = 3
	firstRowWidth    = 2
)

// GenerateSeatMap derives the full seat layout for a flight from its
// aircraft's per-class seat counts.  The layout is deterministic: the
// same aircraft configuration always yields the same labels and seat
// types, which downstream systems rely on.  All seats start Available.
//
// Economy seat types follow the corrected column rule: columns 1 and
// 6 are Window, 2 and 5 Middle, 3 and 4 Aisle.  The legacy system
// checked column 1 twice and therefore labelled columns 5 and 6 as
// Middle/Aisle incorrectly; the fix is flagged for product sign-off
// since persisted legacy rows still carry the old labels.
func GenerateSeatMap(flightID uint64, a *model.Aircraft) []model.SeatAssignment {
	seats := make([]model.SeatAssignment, 0, a.EconomySeats+a.BusinessSeats+a.FirstClassSeats)

	for i := 0; i < a.EconomySeats; i++ {
		col := i%economyRowWidth + 1
		var seatType string
		switch {
		case col == 1 || col == economyRowWidth:
			seatType = model.SeatTypeWindow
		case col == 2 || col == 5:
			seatType = model.SeatTypeMiddle
		default:
			seatType = model.SeatTypeAisle
		}
		seats = append(seats, model.SeatAssignment{
			FlightID:   flightID,
			SeatNumber: seatLabel(i, economyRowWidth),
			Class:      model.ClassEconomy,
			SeatType:   seatType,
			Status:     model.SeatAvailable,
		})
	}

	// Business rows hold three seats: the outer two are Window, the
	// centre one Middle.
	for i := 0; i < a.BusinessSeats; i++ {
		col := i%businessRowWidth + 1
		seatType := model.SeatTypeMiddle
		if col == 1 || col == businessRowWidth {
			seatType = model.SeatTypeWindow
		}
		seats = append(seats, model.SeatAssignment{
			FlightID:   flightID,
			SeatNumber: seatLabel(i, businessRowWidth),
			Class:      model.ClassBusiness,
			SeatType:   seatType,
			Status:     model.SeatAvailable,
		})
	}

	// First class pairs: every seat touches a window.
	for i := 0; i < a.FirstClassSeats; i++ {
		seats = append(seats, model.SeatAssignment{
			FlightID:   flightID,
			SeatNumber: seatLabel(i, firstRowWidth),
			Class:      model.ClassFirst,
			SeatType:   model.SeatTypeWindow,
			Status:     model.SeatAvailable,
		})
	}

	return seats
}

// seatLabel builds labels like A1..A6, B1..  The row letter is
// 'A' + index/rowWidth, the column is 1-based within the row.
func seatLabel(index, rowWidth int) string {
	return fmt.Sprintf("%c%d", rune('A'+index/rowWidth), index%rowWidth+1)
}
