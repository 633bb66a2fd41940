package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// PromotionRepo provides access to the promotions table, including
// the best-discount selection used by search and suggestions.
type PromotionRepo struct {
	db *sql.DB
}

// NewPromotionRepo constructs a PromotionRepo with the given DB handle.
func NewPromotionRepo(db *sql.DB) *PromotionRepo {
	return &PromotionRepo{db: db}
}

// Create inserts a promotion. On success the ID is populated.
func (r *PromotionRepo) Create(ctx context.Context, p *model.Promotion) error {
	const q = `INSERT INTO promotions (flight_id, title, description, discount_rate, start_date, end_date)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.FlightID, p.Title, p.Description,
		p.DiscountRate, p.StartDate, p.EndDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// Delete removes a promotion, returning ErrPromotionNotFound when no
// row matches.
func (r *PromotionRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM promotions WHERE promotion_id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPromotionNotFound
	}
	return nil
}

// ListAll returns every promotion, newest window first.  Shown on the
// public news page.
func (r *PromotionRepo) ListAll(ctx context.Context) ([]model.Promotion, error) {
	const q = `SELECT promotion_id, flight_id, title, description, discount_rate, start_date, end_date
	           FROM promotions
	           ORDER BY start_date DESC, promotion_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Promotion
	for rows.Next() {
		var p model.Promotion
		if err := rows.Scan(&p.ID, &p.FlightID, &p.Title, &p.Description,
			&p.DiscountRate, &p.StartDate, &p.EndDate); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// BestDiscountAt returns the highest discount rate among the flight's
// promotions whose window contains ref (start_date < ref <= end_date).
// Ties break toward the lowest promotion id, which keeps the choice
// stable across calls.  ok is false when no window matches.
func (r *PromotionRepo) BestDiscountAt(ctx context.Context, flightID uint64, ref time.Time) (float64, bool, error) {
	const q = `SELECT discount_rate FROM promotions
	           WHERE flight_id = ? AND start_date < ? AND end_date >= ?
	           ORDER BY discount_rate DESC, promotion_id ASC
	           LIMIT 1`
	return r.bestDiscount(ctx, q, flightID, ref, ref)
}

// BestCurrentDiscount is the forward-looking variant used by
// suggestions: the window must have started and not yet ended
// relative to now (start_date < now AND end_date > now).
func (r *PromotionRepo) BestCurrentDiscount(ctx context.Context, flightID uint64) (float64, bool, error) {
	now := time.Now().UTC()
	const q = `SELECT discount_rate FROM promotions
	           WHERE flight_id = ? AND start_date < ? AND end_date > ?
	           ORDER BY discount_rate DESC, promotion_id ASC
	           LIMIT 1`
	return r.bestDiscount(ctx, q, flightID, now, now)
}

func (r *PromotionRepo) bestDiscount(ctx context.Context, query string, flightID uint64, a, b time.Time) (float64, bool, error) {
	var rate float64
	err := r.db.QueryRowContext(ctx, query, flightID, a, b).Scan(&rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return rate, true, nil
}
