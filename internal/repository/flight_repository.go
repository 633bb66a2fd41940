package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// FlightRepo provides access to the flights table.  The availability
// search lives in flight_search.go.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// DB exposes the underlying handle so callers can open transactions.
func (r *FlightRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a flight within an existing transaction and
// populates the generated ID.  Seat map and stats rows are written in
// the same transaction by the caller.
func (r *FlightRepo) CreateTx(ctx context.Context, tx *sql.Tx, f *model.Flight) error {
	const q = `INSERT INTO flights
	           (aircraft_id, departure_airport, arrival_airport, departure_time, arrival_time,
	            updated_departure_time, base_price_cents, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, f.AircraftID, f.DepartureAirport, f.ArrivalAirport,
		f.DepartureTime, f.ArrivalTime, f.UpdatedDepartureTime, f.BasePriceCents, f.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// GetByID retrieves a flight by its id.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (*model.Flight, error) {
	const q = `SELECT flight_id, aircraft_id, departure_airport, arrival_airport,
	                  departure_time, arrival_time, updated_departure_time,
	                  base_price_cents, delay_reason, created_at
	           FROM flights WHERE flight_id = ?`
	var f model.Flight
	var reason sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&f.ID, &f.AircraftID, &f.DepartureAirport, &f.ArrivalAirport,
		&f.DepartureTime, &f.ArrivalTime, &f.UpdatedDepartureTime,
		&f.BasePriceCents, &reason, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrFlightNotFound
		}
		return nil, err
	}
	if reason.Valid {
		v := reason.String
		f.DelayReason = &v
	}
	return &f, nil
}

// UpdateDelay records a delay reason and moves the current departure
// time.  The scheduled departure_time column is left untouched.
func (r *FlightRepo) UpdateDelay(ctx context.Context, id uint64, reason string, newDeparture time.Time) error {
	const q = `UPDATE flights SET delay_reason = ?, updated_departure_time = ? WHERE flight_id = ?`
	res, err := r.db.ExecContext(ctx, q, reason, newDeparture, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return service.ErrFlightNotFound
	}
	return nil
}
