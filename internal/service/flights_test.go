package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

func fleetFixture(t *testing.T) (*FleetService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.seedAircraft(model.Aircraft{
		ID: 1, Manufacturer: "Airbus", Model: "A320",
		Capacity: 180, EconomySeats: 12, BusinessSeats: 6, FirstClassSeats: 2,
	})
	return NewFleetService(store), store
}

func testFlight() *model.Flight {
	return &model.Flight{
		AircraftID:       1,
		DepartureAirport: 10,
		ArrivalAirport:   20,
		DepartureTime:    time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC),
		ArrivalTime:      time.Date(2026, 7, 1, 11, 0, 0, 0, time.UTC),
		BasePriceCents:   25000,
	}
}

func TestCreateFlightGeneratesSeatsAndStats(t *testing.T) {
	svc, store := fleetFixture(t)
	f := testFlight()

	require.NoError(t, svc.CreateFlight(context.Background(), f))
	require.NotZero(t, f.ID)

	// The current departure defaults to the schedule.
	assert.Equal(t, f.DepartureTime, f.UpdatedDepartureTime)

	// Full seat map: 12 economy + 6 business + 2 first, all open.
	economy, err := store.CountAvailable(context.Background(), f.ID, model.ClassEconomy)
	require.NoError(t, err)
	assert.Equal(t, 12, economy)
	business, err := store.CountAvailable(context.Background(), f.ID, model.ClassBusiness)
	require.NoError(t, err)
	assert.Equal(t, 6, business)
	first, err := store.CountAvailable(context.Background(), f.ID, model.ClassFirst)
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	// Stats start zeroed.
	stats, err := store.StatsByFlight(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalTickets)
	assert.Equal(t, int64(0), stats.TotalRevenueCents)
}

func TestCreateFlightUnknownAircraft(t *testing.T) {
	svc, store := fleetFixture(t)
	f := testFlight()
	f.AircraftID = 99

	err := svc.CreateFlight(context.Background(), f)
	assert.ErrorIs(t, err, ErrAircraftNotFound)

	// The rolled-back flight must leave no stats row behind.
	_, err = store.StatsByFlight(context.Background(), 1)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestCreateFlightValidation(t *testing.T) {
	svc, _ := fleetFixture(t)
	ctx := context.Background()

	missingAircraft := testFlight()
	missingAircraft.AircraftID = 0
	assert.ErrorIs(t, svc.CreateFlight(ctx, missingAircraft), ErrValidation)

	missingRoute := testFlight()
	missingRoute.ArrivalAirport = 0
	assert.ErrorIs(t, svc.CreateFlight(ctx, missingRoute), ErrValidation)

	missingTimes := testFlight()
	missingTimes.DepartureTime = time.Time{}
	assert.ErrorIs(t, svc.CreateFlight(ctx, missingTimes), ErrValidation)
}

func TestDelay(t *testing.T) {
	svc, store := fleetFixture(t)
	ctx := context.Background()
	f := testFlight()
	require.NoError(t, svc.CreateFlight(ctx, f))

	newDeparture := f.DepartureTime.Add(3 * time.Hour)
	require.NoError(t, svc.Delay(ctx, f.ID, "crew rotation", newDeparture))

	store.mu.Lock()
	updated := store.state.flights[f.ID]
	store.mu.Unlock()
	require.NotNil(t, updated.DelayReason)
	assert.Equal(t, "crew rotation", *updated.DelayReason)
	assert.Equal(t, newDeparture, updated.UpdatedDepartureTime)
	// The original schedule is preserved for search.
	assert.Equal(t, f.DepartureTime, updated.DepartureTime)
}

func TestDelayValidation(t *testing.T) {
	svc, _ := fleetFixture(t)
	ctx := context.Background()
	when := time.Now().Add(time.Hour)

	assert.ErrorIs(t, svc.Delay(ctx, 0, "weather", when), ErrValidation)
	assert.ErrorIs(t, svc.Delay(ctx, 1, "   ", when), ErrValidation)
	assert.ErrorIs(t, svc.Delay(ctx, 1, "weather", time.Time{}), ErrValidation)
}

func TestDelayUnknownFlight(t *testing.T) {
	svc, _ := fleetFixture(t)
	err := svc.Delay(context.Background(), 404, "weather", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestSummarize(t *testing.T) {
	svc, _ := fleetFixture(t)
	ctx := context.Background()
	f := testFlight()
	require.NoError(t, svc.CreateFlight(ctx, f))

	stats, err := svc.Summarize(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, stats.FlightID)

	_, err = svc.Summarize(ctx, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Summarize(ctx, 404)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestSeatAvailabilityTracksBookings(t *testing.T) {
	svc, store := fleetFixture(t)
	ctx := context.Background()
	f := testFlight()
	require.NoError(t, svc.CreateFlight(ctx, f))

	booking := NewBookingService(store)
	_, err := booking.Book(ctx, 7, f.ID, "A1", model.ClassEconomy, 25000, time.Now())
	require.NoError(t, err)

	n, err := svc.SeatAvailability(ctx, f.ID, model.ClassEconomy)
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	_, err = svc.SeatAvailability(ctx, f.ID, "Premium")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.SeatAvailability(ctx, 0, model.ClassEconomy)
	assert.ErrorIs(t, err, ErrValidation)
}
