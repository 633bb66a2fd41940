package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// TicketRepo provides access to the tickets table.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// CreateTx inserts a ticket within an existing transaction and
// populates the generated ID.
func (r *TicketRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Ticket) error {
	const q = `INSERT INTO tickets (reservation_id, seat_number, class, price_cents, status)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, t.ReservationID, t.SeatNumber, t.Class, t.PriceCents, t.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// ListByReservationTx returns every ticket under a reservation inside
// the transaction, so cancellation works from the same snapshot it
// mutates.
func (r *TicketRepo) ListByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uint64) ([]model.Ticket, error) {
	const q = `SELECT ticket_id, reservation_id, seat_number, class, price_cents, status
	           FROM tickets WHERE reservation_id = ?
	           ORDER BY ticket_id`
	rows, err := tx.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Ticket
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.ReservationID, &t.SeatNumber, &t.Class, &t.PriceCents, &t.Status); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkCancelledByReservationTx sets every ticket of the reservation
// to Cancelled.
func (r *TicketRepo) MarkCancelledByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uint64) error {
	const q = `UPDATE tickets SET status = 'Cancelled' WHERE reservation_id = ?`
	_, err := tx.ExecContext(ctx, q, reservationID)
	return err
}
