package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/service"
)

// AircraftRepo provides access to the aircrafts table.
type AircraftRepo struct {
	db *sql.DB
}

// NewAircraftRepo constructs an AircraftRepo with the given DB handle.
func NewAircraftRepo(db *sql.DB) *AircraftRepo {
	return &AircraftRepo{db: db}
}

// Create inserts an aircraft configuration. On success the ID is populated.
func (r *AircraftRepo) Create(ctx context.Context, a *model.Aircraft) error {
	const q = `INSERT INTO aircrafts (manufacturer, model, capacity, economy_seats, business_seats, first_class_seats)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Manufacturer, a.Model, a.Capacity,
		a.EconomySeats, a.BusinessSeats, a.FirstClassSeats)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID retrieves an aircraft by its id.
func (r *AircraftRepo) GetByID(ctx context.Context, id uint64) (*model.Aircraft, error) {
	return r.getByID(ctx, r.db.QueryRowContext, id)
}

// GetByIDTx is GetByID inside an existing transaction.  Flight
// creation reads the aircraft in the same transaction that writes the
// seat map so the configuration cannot change underneath it.
func (r *AircraftRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Aircraft, error) {
	return r.getByID(ctx, tx.QueryRowContext, id)
}

type rowQuerier func(ctx context.Context, query string, args ...any) *sql.Row

func (r *AircraftRepo) getByID(ctx context.Context, queryRow rowQuerier, id uint64) (*model.Aircraft, error) {
	const q = `SELECT aircraft_id, manufacturer, model, capacity, economy_seats, business_seats, first_class_seats
	           FROM aircrafts WHERE aircraft_id = ?`
	var a model.Aircraft
	err := queryRow(ctx, q, id).Scan(&a.ID, &a.Manufacturer, &a.Model, &a.Capacity,
		&a.EconomySeats, &a.BusinessSeats, &a.FirstClassSeats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrAircraftNotFound
		}
		return nil, err
	}
	return &a, nil
}
