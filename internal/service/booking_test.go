package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// bookingFixture seeds flight 1 with a small economy cabin and
// returns a service over the fake store.
func bookingFixture(t *testing.T) (*BookingService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	flight := model.Flight{ID: 1, AircraftID: 1, BasePriceCents: 15000}
	store.seedFlight(flight, GenerateSeatMap(1, &model.Aircraft{EconomySeats: 6, BusinessSeats: 3}))
	return NewBookingService(store), store
}

func TestBookSuccess(t *testing.T) {
	svc, store := bookingFixture(t)
	bookedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	result, err := svc.Book(context.Background(), 7, 1, "A1", model.ClassEconomy, 15000, bookedAt)
	require.NoError(t, err)

	assert.Equal(t, model.ReservationConfirmed, result.Reservation.Status)
	assert.Equal(t, uint64(7), result.Reservation.CustomerID)
	assert.Equal(t, bookedAt, result.Reservation.BookingDate)
	assert.NotZero(t, result.Reservation.ID)

	assert.Equal(t, model.TicketActive, result.Ticket.Status)
	assert.Equal(t, "A1", result.Ticket.SeatNumber)
	assert.Equal(t, uint32(15000), result.Ticket.PriceCents)

	assert.Equal(t, model.SeatBooked, store.seatStatus(1, "A1", model.ClassEconomy))
	stats := store.flightStats(1)
	assert.Equal(t, int64(1), stats.TotalTickets)
	assert.Equal(t, int64(15000), stats.TotalRevenueCents)
	assert.Equal(t, bookedAt, stats.LastUpdated)
}

func TestBookValidation(t *testing.T) {
	svc, _ := bookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, 0, 1, "A1", model.ClassEconomy, 100, time.Now())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Book(ctx, 7, 1, "", model.ClassEconomy, 100, time.Now())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Book(ctx, 7, 1, "A1", "Premium", 100, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookSeatTaken(t *testing.T) {
	svc, store := bookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, 7, 1, "A1", model.ClassEconomy, 15000, time.Now())
	require.NoError(t, err)

	_, err = svc.Book(ctx, 8, 1, "A1", model.ClassEconomy, 15000, time.Now())
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	// The losing attempt must leave no trace.
	stats := store.flightStats(1)
	assert.Equal(t, int64(1), stats.TotalTickets)
	assert.Equal(t, 1, store.reservationCount())
}

func TestBookUnknownSeat(t *testing.T) {
	svc, _ := bookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, 7, 1, "Z9", model.ClassEconomy, 15000, time.Now())
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	// A1 exists in Economy but not in First; class is part of the key.
	_, err = svc.Book(ctx, 7, 1, "A1", model.ClassFirst, 15000, time.Now())
	assert.ErrorIs(t, err, ErrSeatUnavailable)
}

func TestBookConcurrentSameSeat(t *testing.T) {
	svc, store := bookingFixture(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(context.Background(), uint64(i+1), 1, "A2", model.ClassEconomy, 15000, time.Now())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSeatUnavailable)
		}
	}
	assert.Equal(t, 1, winners, "exactly one booking may win the seat")
	assert.Equal(t, int64(1), store.flightStats(1).TotalTickets)
}

func TestBookRollsBackOnStatsFailure(t *testing.T) {
	svc, store := bookingFixture(t)
	boom := errors.New("stats write failed")
	store.statsErr = boom

	_, err := svc.Book(context.Background(), 7, 1, "A1", model.ClassEconomy, 15000, time.Now())
	require.ErrorIs(t, err, boom)

	// Nothing from the failed transaction may be visible.
	assert.Equal(t, model.SeatAvailable, store.seatStatus(1, "A1", model.ClassEconomy))
	assert.Equal(t, 0, store.reservationCount())
	assert.Equal(t, int64(0), store.flightStats(1).TotalTickets)
}

func TestCancelRoundTrip(t *testing.T) {
	svc, store := bookingFixture(t)
	ctx := context.Background()
	bookedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	booked, err := svc.Book(ctx, 7, 1, "A3", model.ClassEconomy, 20000, bookedAt)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, booked.Reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, booked.Reservation.ID, cancelled.ReservationID)
	assert.Equal(t, uint64(1), cancelled.FlightID)
	assert.Equal(t, []string{"A3"}, cancelled.Seats)
	assert.Equal(t, int64(20000), cancelled.RefundCents)

	// The seat is free again and the stats are back where they started.
	assert.Equal(t, model.SeatAvailable, store.seatStatus(1, "A3", model.ClassEconomy))
	stats := store.flightStats(1)
	assert.Equal(t, int64(0), stats.TotalTickets)
	assert.Equal(t, int64(0), stats.TotalRevenueCents)
	// Cancellation does not touch the last-updated marker.
	assert.Equal(t, bookedAt, stats.LastUpdated)

	// The freed seat can be booked again.
	again, err := svc.Book(ctx, 8, 1, "A3", model.ClassEconomy, 20000, time.Now().UTC())
	require.NoError(t, err)
	assert.NotEqual(t, booked.Reservation.ID, again.Reservation.ID)
}

func TestCancelUnknownReservation(t *testing.T) {
	svc, _ := bookingFixture(t)
	_, err := svc.Cancel(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancelValidation(t *testing.T) {
	svc, _ := bookingFixture(t)
	_, err := svc.Cancel(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	svc, store := bookingFixture(t)
	ctx := context.Background()

	booked, err := svc.Book(ctx, 7, 1, "A4", model.ClassEconomy, 18000, time.Now())
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, booked.Reservation.ID)
	require.NoError(t, err)

	before := store.flightStats(1)
	_, err = svc.Cancel(ctx, booked.Reservation.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	// The second cancel must not decrement the totals again.
	assert.Equal(t, before, store.flightStats(1))
}

func TestCancelReservationWithoutTickets(t *testing.T) {
	svc, store := bookingFixture(t)

	// Force a confirmed reservation with no tickets behind it.
	store.mu.Lock()
	store.state.reservations[55] = model.Reservation{
		ID: 55, CustomerID: 7, FlightID: 1,
		BookingDate: time.Now(), Status: model.ReservationConfirmed,
	}
	store.mu.Unlock()

	_, err := svc.Cancel(context.Background(), 55)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
