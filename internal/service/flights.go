package service

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// FleetStore extends the unit of work with the operator-facing reads
// and writes that do not need multi-row atomicity.
type FleetStore interface {
	UnitOfWork

	// UpdateFlightDelay records a delay reason and moves the current
	// departure time.  Returns ErrFlightNotFound when the flight does
	// not exist.
	UpdateFlightDelay(ctx context.Context, flightID uint64, reason string, newDeparture time.Time) error

	// StatsByFlight returns the running totals for a flight, or
	// ErrFlightNotFound when no stats row exists.
	StatsByFlight(ctx context.Context, flightID uint64) (*model.FlightStats, error)

	// CountAvailable counts committed Available seats of a class on a
	// flight.  No caching sits in front of this: booking validation
	// must see committed state at query time.
	CountAvailable(ctx context.Context, flightID uint64, class string) (int, error)
}

// FleetService covers flight lifecycle operations: creation with seat
// map generation, delay updates, availability counts and the stats
// summary.
type FleetService struct {
	store FleetStore
}

// NewFleetService returns a FleetService backed by the given store.
func NewFleetService(store FleetStore) *FleetService {
	return &FleetService{store: store}
}

// CreateFlight inserts the flight, generates its full seat map from
// the aircraft configuration and creates the zeroed stats row, all in
// one transaction.  If any step fails the whole flight creation rolls
// back; a flight never exists without its seats and stats.
func (s *FleetService) CreateFlight(ctx context.Context, f *model.Flight) error {
	if f.AircraftID == 0 || f.DepartureAirport == 0 || f.ArrivalAirport == 0 ||
		f.DepartureTime.IsZero() || f.ArrivalTime.IsZero() {
		return ErrValidation
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	// The current departure starts out equal to the schedule and only
	// diverges when a delay is recorded.
	if f.UpdatedDepartureTime.IsZero() {
		f.UpdatedDepartureTime = f.DepartureTime
	}

	return s.store.WithinTx(ctx, func(tx Tx) error {
		aircraft, err := tx.AircraftByID(ctx, f.AircraftID)
		if err != nil {
			return err
		}
		if err := tx.CreateFlight(ctx, f); err != nil {
			return err
		}
		if err := tx.CreateSeatAssignments(ctx, GenerateSeatMap(f.ID, aircraft)); err != nil {
			return err
		}
		return tx.CreateFlightStats(ctx, &model.FlightStats{
			FlightID:    f.ID,
			LastUpdated: f.CreatedAt,
		})
	})
}

// Delay records a delay for a flight.  The scheduled departure time
// is preserved; only the current departure moves, so search keeps
// matching both.
func (s *FleetService) Delay(ctx context.Context, flightID uint64, reason string, newDeparture time.Time) error {
	reason = strings.TrimSpace(reason)
	if flightID == 0 || reason == "" || newDeparture.IsZero() {
		return ErrValidation
	}
	return s.store.UpdateFlightDelay(ctx, flightID, reason, newDeparture)
}

// Summarize returns the flight's running ticket and revenue totals.
func (s *FleetService) Summarize(ctx context.Context, flightID uint64) (*model.FlightStats, error) {
	if flightID == 0 {
		return nil, ErrValidation
	}
	return s.store.StatsByFlight(ctx, flightID)
}

// SeatAvailability reports how many seats of a class are currently
// Available on a flight.
func (s *FleetService) SeatAvailability(ctx context.Context, flightID uint64, class string) (int, error) {
	if flightID == 0 || !model.ValidClass(class) {
		return 0, ErrValidation
	}
	return s.store.CountAvailable(ctx, flightID, class)
}
