package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// FlightStatsRepo provides access to the flight_stats table.  The
// totals are only ever adjusted incrementally by the booking workflow
// inside its transaction; nothing here recomputes them from tickets.
type FlightStatsRepo struct {
	db *sql.DB
}

// NewFlightStatsRepo constructs a FlightStatsRepo with the given DB handle.
func NewFlightStatsRepo(db *sql.DB) *FlightStatsRepo {
	return &FlightStatsRepo{db: db}
}

// CreateTx inserts the zeroed stats row for a new flight inside the
// flight-creation transaction.
func (r *FlightStatsRepo) CreateTx(ctx context.Context, tx *sql.Tx, s *model.FlightStats) error {
	const q = `INSERT INTO flight_stats (flight_id, total_tickets, total_revenue_cents, last_updated)
	           VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, s.FlightID, s.TotalTickets, s.TotalRevenueCents, s.LastUpdated)
	return err
}

// AdjustTx adds the deltas to a flight's running totals.  A zero "at"
// leaves last_updated untouched (cancellations decrement totals
// without claiming to be the latest booking activity).
func (r *FlightStatsRepo) AdjustTx(ctx context.Context, tx *sql.Tx, flightID uint64, deltaTickets, deltaRevenueCents int64, at time.Time) error {
	if at.IsZero() {
		const q = `UPDATE flight_stats
		           SET total_tickets = total_tickets + ?, total_revenue_cents = total_revenue_cents + ?
		           WHERE flight_id = ?`
		_, err := tx.ExecContext(ctx, q, deltaTickets, deltaRevenueCents, flightID)
		return err
	}
	const q = `UPDATE flight_stats
	           SET total_tickets = total_tickets + ?, total_revenue_cents = total_revenue_cents + ?, last_updated = ?
	           WHERE flight_id = ?`
	_, err := tx.ExecContext(ctx, q, deltaTickets, deltaRevenueCents, at, flightID)
	return err
}

// GetByFlight returns the stats row for a flight, or
// ErrFlightNotFound when the flight was never created.
func (r *FlightStatsRepo) GetByFlight(ctx context.Context, flightID uint64) (*model.FlightStats, error) {
	const q = `SELECT flight_id, total_tickets, total_revenue_cents, last_updated
	           FROM flight_stats WHERE flight_id = ?`
	var s model.FlightStats
	err := r.db.QueryRowContext(ctx, q, flightID).
		Scan(&s.FlightID, &s.TotalTickets, &s.TotalRevenueCents, &s.LastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrFlightNotFound
		}
		return nil, err
	}
	return &s, nil
}
