package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

func TestGenerateSeatMapEconomyLayout(t *testing.T) {
	a := &model.Aircraft{EconomySeats: 8}
	seats := GenerateSeatMap(42, a)
	require.Len(t, seats, 8)

	wantLabels := []string{"A1", "A2", "A3", "A4", "A5", "A6", "B1", "B2"}
	wantTypes := []string{
		model.SeatTypeWindow, model.SeatTypeMiddle, model.SeatTypeAisle,
		model.SeatTypeAisle, model.SeatTypeMiddle, model.SeatTypeWindow,
		model.SeatTypeWindow, model.SeatTypeMiddle,
	}
	for i, seat := range seats {
		assert.Equal(t, uint64(42), seat.FlightID)
		assert.Equal(t, wantLabels[i], seat.SeatNumber)
		assert.Equal(t, model.ClassEconomy, seat.Class)
		assert.Equal(t, wantTypes[i], seat.SeatType)
		assert.Equal(t, model.SeatAvailable, seat.Status)
	}
}

func TestGenerateSeatMapBusinessAndFirst(t *testing.T) {
	a := &model.Aircraft{BusinessSeats: 3, FirstClassSeats: 2}
	seats := GenerateSeatMap(1, a)
	require.Len(t, seats, 5)

	// Business rows of three: outer seats Window, centre Middle.
	assert.Equal(t, "A1", seats[0].SeatNumber)
	assert.Equal(t, model.SeatTypeWindow, seats[0].SeatType)
	assert.Equal(t, "A2", seats[1].SeatNumber)
	assert.Equal(t, model.SeatTypeMiddle, seats[1].SeatType)
	assert.Equal(t, "A3", seats[2].SeatNumber)
	assert.Equal(t, model.SeatTypeWindow, seats[2].SeatType)
	for _, seat := range seats[:3] {
		assert.Equal(t, model.ClassBusiness, seat.Class)
	}

	// First class pairs: every seat is a Window seat.
	for i, seat := range seats[3:] {
		assert.Equal(t, model.ClassFirst, seat.Class)
		assert.Equal(t, model.SeatTypeWindow, seat.SeatType)
		assert.Equal(t, seatLabel(i, firstRowWidth), seat.SeatNumber)
	}
}

func TestGenerateSeatMapDeterministic(t *testing.T) {
	a := &model.Aircraft{EconomySeats: 30, BusinessSeats: 6, FirstClassSeats: 4}
	first := GenerateSeatMap(7, a)
	second := GenerateSeatMap(7, a)
	assert.Equal(t, first, second)
	assert.Len(t, first, 40)
}

func TestGenerateSeatMapRowAdvance(t *testing.T) {
	// The row letter advances once per full row in each class.
	a := &model.Aircraft{EconomySeats: 13}
	seats := GenerateSeatMap(1, a)
	require.Len(t, seats, 13)
	assert.Equal(t, "B6", seats[11].SeatNumber)
	assert.Equal(t, "C1", seats[12].SeatNumber)
	assert.Equal(t, model.SeatTypeWindow, seats[12].SeatType)
}

func TestGenerateSeatMapEmptyAircraft(t *testing.T) {
	seats := GenerateSeatMap(1, &model.Aircraft{})
	assert.Empty(t, seats)
}
