package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// SeatAssignmentRepo provides access to the seat_assignments table.
// Seat status is the single source of truth for availability, so the
// booking-path methods here are the concurrency enforcement point:
// the FOR UPDATE lookup plus the conditional status flip make sure
// two transactions cannot both book one seat.
type SeatAssignmentRepo struct {
	db *sql.DB
}

// NewSeatAssignmentRepo constructs a SeatAssignmentRepo with the given DB handle.
func NewSeatAssignmentRepo(db *sql.DB) *SeatAssignmentRepo {
	return &SeatAssignmentRepo{db: db}
}

// CreateBulkTx inserts a whole seat map in one statement inside the
// flight-creation transaction.  Each row requires five values.
func (r *SeatAssignmentRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, seats []model.SeatAssignment) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seat_assignments (flight_id, seat_number, class, seat_type, status) VALUES `
	args := make([]interface{}, 0, len(seats)*5)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, s.FlightID, s.SeatNumber, s.Class, s.SeatType, s.Status)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetForBookingTx loads one seat by flight, label and class and locks
// the row until the transaction ends.  A missing row maps to
// ErrSeatUnavailable: from the caller's point of view a seat that
// does not exist under that flight/class cannot be booked.
func (r *SeatAssignmentRepo) GetForBookingTx(ctx context.Context, tx *sql.Tx, flightID uint64, seatNumber, class string) (*model.SeatAssignment, error) {
	const q = `SELECT seat_id, flight_id, seat_number, class, seat_type, status
	           FROM seat_assignments
	           WHERE flight_id = ? AND seat_number = ? AND class = ?
	           FOR UPDATE`
	var s model.SeatAssignment
	err := tx.QueryRowContext(ctx, q, flightID, seatNumber, class).
		Scan(&s.ID, &s.FlightID, &s.SeatNumber, &s.Class, &s.SeatType, &s.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrSeatUnavailable
		}
		return nil, err
	}
	return &s, nil
}

// MarkBookedTx flips a seat to Booked only when it is still
// Available.  The boolean result is the compare-and-swap outcome: a
// false return means a concurrent booking got there first.
func (r *SeatAssignmentRepo) MarkBookedTx(ctx context.Context, tx *sql.Tx, flightID uint64, seatNumber, class string) (bool, error) {
	const q = `UPDATE seat_assignments SET status = 'Booked'
	           WHERE flight_id = ? AND seat_number = ? AND class = ? AND status = 'Available'`
	res, err := tx.ExecContext(ctx, q, flightID, seatNumber, class)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReleaseTx flips the referenced seats back to Available inside the
// cancellation transaction.  Matching includes the class so a
// same-labelled seat in another cabin is never touched.
func (r *SeatAssignmentRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, flightID uint64, refs []model.SeatRef) error {
	if len(refs) == 0 {
		return nil
	}
	conds := make([]string, 0, len(refs))
	args := make([]interface{}, 0, len(refs)*2+1)
	args = append(args, flightID)
	for _, ref := range refs {
		conds = append(conds, "(seat_number = ? AND class = ?)")
		args = append(args, ref.SeatNumber, ref.Class)
	}
	query := `UPDATE seat_assignments SET status = 'Available'
	          WHERE flight_id = ? AND (` + strings.Join(conds, " OR ") + `)`
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// CountAvailable counts committed Available seats of a class on a
// flight.  Always reads the table directly; availability is never
// cached across transactions.
func (r *SeatAssignmentRepo) CountAvailable(ctx context.Context, flightID uint64, class string) (int, error) {
	const q = `SELECT COUNT(*) FROM seat_assignments
	           WHERE flight_id = ? AND class = ? AND status = 'Available'`
	var n int
	if err := r.db.QueryRowContext(ctx, q, flightID, class).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListByFlight returns the full seat map of a flight ordered by
// class, then label.  Used by the public seat browse endpoint.
func (r *SeatAssignmentRepo) ListByFlight(ctx context.Context, flightID uint64) ([]model.SeatAssignment, error) {
	const q = `SELECT seat_id, flight_id, seat_number, class, seat_type, status
	           FROM seat_assignments
	           WHERE flight_id = ?
	           ORDER BY class, seat_number`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatAssignment
	for rows.Next() {
		var s model.SeatAssignment
		if err := rows.Scan(&s.ID, &s.FlightID, &s.SeatNumber, &s.Class, &s.SeatType, &s.Status); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
