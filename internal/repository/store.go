package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// Store bundles every repository over one database handle and
// implements the engine's persistence ports (service.UnitOfWork,
// service.SearchStore, service.FleetStore).  The composition root
// builds one Store and injects it into the services; no component
// reaches for a global client.
type Store struct {
	db *sql.DB

	Aircraft     *AircraftRepo
	Airports     *AirportRepo
	Flights      *FlightRepo
	Seats        *SeatAssignmentRepo
	Reservations *ReservationRepo
	Tickets      *TicketRepo
	Promotions   *PromotionRepo
	Stats        *FlightStatsRepo
	News         *NewsRepo
	Customers    *CustomerRepo
}

// NewStore wires all repositories over the given handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		Aircraft:     NewAircraftRepo(db),
		Airports:     NewAirportRepo(db),
		Flights:      NewFlightRepo(db),
		Seats:        NewSeatAssignmentRepo(db),
		Reservations: NewReservationRepo(db),
		Tickets:      NewTicketRepo(db),
		Promotions:   NewPromotionRepo(db),
		Stats:        NewFlightStatsRepo(db),
		News:         NewNewsRepo(db),
		Customers:    NewCustomerRepo(db),
	}
}

// WithinTx runs fn inside a repeatable-read transaction.  Any error
// from fn rolls everything back and is returned unchanged, so partial
// bookings or half-created flights never become visible.
func (s *Store) WithinTx(ctx context.Context, fn func(tx service.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(&storeTx{tx: tx, s: s}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// storeTx adapts the repositories' Tx methods to the service.Tx port.
type storeTx struct {
	tx *sql.Tx
	s  *Store
}

func (u *storeTx) AircraftByID(ctx context.Context, id uint64) (*model.Aircraft, error) {
	return u.s.Aircraft.GetByIDTx(ctx, u.tx, id)
}

func (u *storeTx) CreateFlight(ctx context.Context, f *model.Flight) error {
	return u.s.Flights.CreateTx(ctx, u.tx, f)
}

func (u *storeTx) CreateSeatAssignments(ctx context.Context, seats []model.SeatAssignment) error {
	return u.s.Seats.CreateBulkTx(ctx, u.tx, seats)
}

func (u *storeTx) CreateFlightStats(ctx context.Context, st *model.FlightStats) error {
	return u.s.Stats.CreateTx(ctx, u.tx, st)
}

func (u *storeTx) SeatAssignment(ctx context.Context, flightID uint64, seatNumber, class string) (*model.SeatAssignment, error) {
	return u.s.Seats.GetForBookingTx(ctx, u.tx, flightID, seatNumber, class)
}

func (u *storeTx) MarkSeatBooked(ctx context.Context, flightID uint64, seatNumber, class string) (bool, error) {
	return u.s.Seats.MarkBookedTx(ctx, u.tx, flightID, seatNumber, class)
}

func (u *storeTx) ReleaseSeats(ctx context.Context, flightID uint64, refs []model.SeatRef) error {
	return u.s.Seats.ReleaseTx(ctx, u.tx, flightID, refs)
}

func (u *storeTx) CreateReservation(ctx context.Context, r *model.Reservation) error {
	return u.s.Reservations.CreateTx(ctx, u.tx, r)
}

func (u *storeTx) CreateTicket(ctx context.Context, t *model.Ticket) error {
	return u.s.Tickets.CreateTx(ctx, u.tx, t)
}

func (u *storeTx) ReservationByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	return u.s.Reservations.GetByIDTx(ctx, u.tx, id)
}

func (u *storeTx) TicketsByReservation(ctx context.Context, reservationID uint64) ([]model.Ticket, error) {
	return u.s.Tickets.ListByReservationTx(ctx, u.tx, reservationID)
}

func (u *storeTx) MarkReservationCancelled(ctx context.Context, id uint64) error {
	return u.s.Reservations.MarkCancelledTx(ctx, u.tx, id)
}

func (u *storeTx) MarkTicketsCancelled(ctx context.Context, reservationID uint64) error {
	return u.s.Tickets.MarkCancelledByReservationTx(ctx, u.tx, reservationID)
}

func (u *storeTx) AdjustFlightStats(ctx context.Context, flightID uint64, deltaTickets, deltaRevenueCents int64, at time.Time) error {
	return u.s.Stats.AdjustTx(ctx, u.tx, flightID, deltaTickets, deltaRevenueCents, at)
}

// Read-side ports.  These run outside booking transactions as
// snapshot reads; search tolerates momentary staleness.

func (s *Store) MatchFlights(ctx context.Context, q service.SearchQuery) ([]service.FlightMatch, error) {
	return s.Flights.Search(ctx, q)
}

func (s *Store) BestDiscountAt(ctx context.Context, flightID uint64, ref time.Time) (float64, bool, error) {
	return s.Promotions.BestDiscountAt(ctx, flightID, ref)
}

func (s *Store) BestCurrentDiscount(ctx context.Context, flightID uint64) (float64, bool, error) {
	return s.Promotions.BestCurrentDiscount(ctx, flightID)
}

func (s *Store) DeparturesFrom(ctx context.Context, origin string) ([]service.RouteOption, error) {
	return s.Flights.DeparturesFrom(ctx, origin)
}

func (s *Store) UpdateFlightDelay(ctx context.Context, flightID uint64, reason string, newDeparture time.Time) error {
	return s.Flights.UpdateDelay(ctx, flightID, reason, newDeparture)
}

func (s *Store) StatsByFlight(ctx context.Context, flightID uint64) (*model.FlightStats, error) {
	return s.Stats.GetByFlight(ctx, flightID)
}

func (s *Store) CountAvailable(ctx context.Context, flightID uint64, class string) (int, error) {
	return s.Seats.CountAvailable(ctx, flightID, class)
}

// Interface conformance is checked at compile time.
var (
	_ service.UnitOfWork  = (*Store)(nil)
	_ service.SearchStore = (*Store)(nil)
	_ service.FleetStore  = (*Store)(nil)
	_ service.Tx          = (*storeTx)(nil)
)
