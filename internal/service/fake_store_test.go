package service

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// fakeStore is an in-memory implementation of the persistence ports.
// WithinTx snapshots the whole state before running fn and restores
// the snapshot on error, mirroring the rollback behavior of a real
// transaction.  The mutex serializes transactions the way row locks
// serialize them in MySQL.
type fakeStore struct {
	mu    sync.Mutex
	state *fakeState

	statsErr error // when set, AdjustFlightStats fails with it
}

type seatKey struct {
	flightID uint64
	seat     string
	class    string
}

type fakeState struct {
	aircraft     map[uint64]model.Aircraft
	flights      map[uint64]model.Flight
	seats        map[seatKey]model.SeatAssignment
	reservations map[uint64]model.Reservation
	tickets      map[uint64][]model.Ticket
	stats        map[uint64]model.FlightStats

	nextFlightID      uint64
	nextSeatID        uint64
	nextReservationID uint64
	nextTicketID      uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{state: &fakeState{
		aircraft:     map[uint64]model.Aircraft{},
		flights:      map[uint64]model.Flight{},
		seats:        map[seatKey]model.SeatAssignment{},
		reservations: map[uint64]model.Reservation{},
		tickets:      map[uint64][]model.Ticket{},
		stats:        map[uint64]model.FlightStats{},
	}}
}

func (st *fakeState) clone() *fakeState {
	cp := &fakeState{
		aircraft:          make(map[uint64]model.Aircraft, len(st.aircraft)),
		flights:           make(map[uint64]model.Flight, len(st.flights)),
		seats:             make(map[seatKey]model.SeatAssignment, len(st.seats)),
		reservations:      make(map[uint64]model.Reservation, len(st.reservations)),
		tickets:           make(map[uint64][]model.Ticket, len(st.tickets)),
		stats:             make(map[uint64]model.FlightStats, len(st.stats)),
		nextFlightID:      st.nextFlightID,
		nextSeatID:        st.nextSeatID,
		nextReservationID: st.nextReservationID,
		nextTicketID:      st.nextTicketID,
	}
	for k, v := range st.aircraft {
		cp.aircraft[k] = v
	}
	for k, v := range st.flights {
		cp.flights[k] = v
	}
	for k, v := range st.seats {
		cp.seats[k] = v
	}
	for k, v := range st.reservations {
		cp.reservations[k] = v
	}
	for k, v := range st.tickets {
		cp.tickets[k] = append([]model.Ticket(nil), v...)
	}
	for k, v := range st.stats {
		cp.stats[k] = v
	}
	return cp
}

// seedFlight installs a flight with the given seat map and a zeroed
// stats row, bypassing the service layer.
func (s *fakeStore) seedFlight(f model.Flight, seats []model.SeatAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.flights[f.ID] = f
	for _, seat := range seats {
		s.state.nextSeatID++
		seat.ID = s.state.nextSeatID
		s.state.seats[seatKey{seat.FlightID, seat.SeatNumber, seat.Class}] = seat
	}
	s.state.stats[f.ID] = model.FlightStats{FlightID: f.ID}
}

func (s *fakeStore) seedAircraft(a model.Aircraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.aircraft[a.ID] = a
}

func (s *fakeStore) seatStatus(flightID uint64, seat, class string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.seats[seatKey{flightID, seat, class}].Status
}

func (s *fakeStore) flightStats(flightID uint64) model.FlightStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.stats[flightID]
}

func (s *fakeStore) reservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.reservations)
}

// WithinTx implements UnitOfWork with snapshot/restore semantics.
func (s *fakeStore) WithinTx(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state.clone()
	if err := fn(&fakeTx{s: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) AircraftByID(_ context.Context, id uint64) (*model.Aircraft, error) {
	a, ok := t.s.state.aircraft[id]
	if !ok {
		return nil, ErrAircraftNotFound
	}
	return &a, nil
}

func (t *fakeTx) CreateFlight(_ context.Context, f *model.Flight) error {
	t.s.state.nextFlightID++
	f.ID = t.s.state.nextFlightID
	t.s.state.flights[f.ID] = *f
	return nil
}

func (t *fakeTx) CreateSeatAssignments(_ context.Context, seats []model.SeatAssignment) error {
	for _, seat := range seats {
		t.s.state.nextSeatID++
		seat.ID = t.s.state.nextSeatID
		t.s.state.seats[seatKey{seat.FlightID, seat.SeatNumber, seat.Class}] = seat
	}
	return nil
}

func (t *fakeTx) CreateFlightStats(_ context.Context, st *model.FlightStats) error {
	t.s.state.stats[st.FlightID] = *st
	return nil
}

func (t *fakeTx) SeatAssignment(_ context.Context, flightID uint64, seatNumber, class string) (*model.SeatAssignment, error) {
	seat, ok := t.s.state.seats[seatKey{flightID, seatNumber, class}]
	if !ok {
		return nil, ErrSeatUnavailable
	}
	return &seat, nil
}

func (t *fakeTx) MarkSeatBooked(_ context.Context, flightID uint64, seatNumber, class string) (bool, error) {
	key := seatKey{flightID, seatNumber, class}
	seat, ok := t.s.state.seats[key]
	if !ok || seat.Status != model.SeatAvailable {
		return false, nil
	}
	seat.Status = model.SeatBooked
	t.s.state.seats[key] = seat
	return true, nil
}

func (t *fakeTx) ReleaseSeats(_ context.Context, flightID uint64, refs []model.SeatRef) error {
	for _, ref := range refs {
		key := seatKey{flightID, ref.SeatNumber, ref.Class}
		if seat, ok := t.s.state.seats[key]; ok {
			seat.Status = model.SeatAvailable
			t.s.state.seats[key] = seat
		}
	}
	return nil
}

func (t *fakeTx) CreateReservation(_ context.Context, r *model.Reservation) error {
	t.s.state.nextReservationID++
	r.ID = t.s.state.nextReservationID
	t.s.state.reservations[r.ID] = *r
	return nil
}

func (t *fakeTx) CreateTicket(_ context.Context, tk *model.Ticket) error {
	t.s.state.nextTicketID++
	tk.ID = t.s.state.nextTicketID
	t.s.state.tickets[tk.ReservationID] = append(t.s.state.tickets[tk.ReservationID], *tk)
	return nil
}

func (t *fakeTx) ReservationByID(_ context.Context, id uint64) (*model.Reservation, error) {
	r, ok := t.s.state.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return &r, nil
}

func (t *fakeTx) TicketsByReservation(_ context.Context, reservationID uint64) ([]model.Ticket, error) {
	return append([]model.Ticket(nil), t.s.state.tickets[reservationID]...), nil
}

func (t *fakeTx) MarkReservationCancelled(_ context.Context, id uint64) error {
	r := t.s.state.reservations[id]
	r.Status = model.ReservationCancelled
	t.s.state.reservations[id] = r
	return nil
}

func (t *fakeTx) MarkTicketsCancelled(_ context.Context, reservationID uint64) error {
	tickets := t.s.state.tickets[reservationID]
	for i := range tickets {
		tickets[i].Status = model.TicketCancelled
	}
	t.s.state.tickets[reservationID] = tickets
	return nil
}

func (t *fakeTx) AdjustFlightStats(_ context.Context, flightID uint64, deltaTickets, deltaRevenueCents int64, at time.Time) error {
	if t.s.statsErr != nil {
		return t.s.statsErr
	}
	st := t.s.state.stats[flightID]
	st.FlightID = flightID
	st.TotalTickets += deltaTickets
	st.TotalRevenueCents += deltaRevenueCents
	if !at.IsZero() {
		st.LastUpdated = at
	}
	t.s.state.stats[flightID] = st
	return nil
}

// Read-side FleetStore methods.

func (s *fakeStore) UpdateFlightDelay(_ context.Context, flightID uint64, reason string, newDeparture time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.state.flights[flightID]
	if !ok {
		return ErrFlightNotFound
	}
	f.DelayReason = &reason
	f.UpdatedDepartureTime = newDeparture
	s.state.flights[flightID] = f
	return nil
}

func (s *fakeStore) StatsByFlight(_ context.Context, flightID uint64) (*model.FlightStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.state.stats[flightID]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &st, nil
}

func (s *fakeStore) CountAvailable(_ context.Context, flightID uint64, class string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, seat := range s.state.seats {
		if k.flightID == flightID && k.class == class && seat.Status == model.SeatAvailable {
			n++
		}
	}
	return n, nil
}

var (
	_ UnitOfWork = (*fakeStore)(nil)
	_ FleetStore = (*fakeStore)(nil)
	_ Tx         = (*fakeTx)(nil)
)
