package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// ReservationRepo provides access to the reservations table and the
// customer-facing reservation listing.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateTx inserts a new reservation within the scope of an existing
// transaction and populates the generated ID.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (customer_id, flight_id, booking_date, status)
	           VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, res.CustomerID, res.FlightID, res.BookingDate, res.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// GetByIDTx loads a reservation and locks its row for the rest of the
// transaction.  The lock makes two concurrent cancels of one
// reservation serialize, so the AlreadyCancelled guard in the service
// sees the first cancel's write.
func (r *ReservationRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Reservation, error) {
	const q = `SELECT reservation_id, customer_id, flight_id, booking_date, status
	           FROM reservations WHERE reservation_id = ?
	           FOR UPDATE`
	var res model.Reservation
	err := tx.QueryRowContext(ctx, q, id).
		Scan(&res.ID, &res.CustomerID, &res.FlightID, &res.BookingDate, &res.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// GetByID loads a reservation outside any transaction.  Used by
// handlers for ownership checks; the cancellation workflow re-reads
// (and locks) the row inside its own transaction.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT reservation_id, customer_id, flight_id, booking_date, status
	           FROM reservations WHERE reservation_id = ?`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&res.ID, &res.CustomerID, &res.FlightID, &res.BookingDate, &res.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// MarkCancelledTx sets the reservation status to Cancelled.
func (r *ReservationRepo) MarkCancelledTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	const q = `UPDATE reservations SET status = 'Cancelled' WHERE reservation_id = ?`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}

// ReservationDetail is a reservation joined to its flight, route
// airports and tickets, as shown on the customer's bookings page.
type ReservationDetail struct {
	ID          uint64    `json:"id"`
	FlightID    uint64    `json:"flight_id"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"booking_date"`
	Departure   string    `json:"departure"`
	Arrival     string    `json:"arrival"`
	DepartsAt   time.Time `json:"departs_at"`
	Tickets     []struct {
		SeatNumber string `json:"seat_number"`
		Class      string `json:"class"`
		PriceCents uint32 `json:"price_cents"`
		Status     string `json:"status"`
	} `json:"tickets"`
}

// ListByCustomer returns all reservations for the given customer with
// flight, airport and ticket details, newest first.  When no
// reservations exist, an empty slice is returned; callers decide
// whether that is an error.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]ReservationDetail, error) {
	const q = `SELECT r.reservation_id, r.flight_id, r.status, r.booking_date,
	                  da.location, aa.location, f.updated_departure_time
	           FROM reservations r
	           JOIN flights f ON f.flight_id = r.flight_id
	           JOIN airports da ON da.airport_id = f.departure_airport
	           JOIN airports aa ON aa.airport_id = f.arrival_airport
	           WHERE r.customer_id = ?
	           ORDER BY r.booking_date DESC, r.reservation_id DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]ReservationDetail, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var d ReservationDetail
		if err := rows.Scan(&d.ID, &d.FlightID, &d.Status, &d.BookingDate,
			&d.Departure, &d.Arrival, &d.DepartsAt); err != nil {
			return nil, err
		}
		d.Tickets = []struct {
			SeatNumber string `json:"seat_number"`
			Class      string `json:"class"`
			PriceCents uint32 `json:"price_cents"`
			Status     string `json:"status"`
		}{}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}

	// Fetch tickets for all reservations in one query.
	ids := make([]interface{}, 0, len(details))
	placeholders := make([]string, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
	}
	ticketQ := `SELECT reservation_id, seat_number, class, price_cents, status
	            FROM tickets
	            WHERE reservation_id IN (` + strings.Join(placeholders, ",") + `)
	            ORDER BY reservation_id, ticket_id`
	trows, err := r.db.QueryContext(ctx, ticketQ, ids...)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		var rid uint64
		var seat, class, status string
		var price uint32
		if err := trows.Scan(&rid, &seat, &class, &price, &status); err != nil {
			return nil, err
		}
		idx, ok := index[rid]
		if !ok {
			continue
		}
		details[idx].Tickets = append(details[idx].Tickets, struct {
			SeatNumber string `json:"seat_number"`
			Class      string `json:"class"`
			PriceCents uint32 `json:"price_cents"`
			Status     string `json:"status"`
		}{SeatNumber: seat, Class: class, PriceCents: price, Status: status})
	}
	if err := trows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
