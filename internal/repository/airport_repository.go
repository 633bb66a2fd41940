package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// AirportRepo provides access to the airports table.
type AirportRepo struct {
	db *sql.DB
}

// NewAirportRepo constructs an AirportRepo with the given DB handle.
func NewAirportRepo(db *sql.DB) *AirportRepo {
	return &AirportRepo{db: db}
}

// Create inserts an airport. On success the ID is populated.
func (r *AirportRepo) Create(ctx context.Context, a *model.Airport) error {
	const q = `INSERT INTO airports (name, location, country) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Location, a.Country)
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

// GetByID retrieves an airport by its id.
func (r *AirportRepo) GetByID(ctx context.Context, id uint64) (*model.Airport, error) {
	const q = `SELECT airport_id, name, location, country FROM airports WHERE airport_id = ?`
	var a model.Airport
	err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name, &a.Location, &a.Country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAirportNotFound
		}
		return nil, err
	}
	return &a, nil
}
