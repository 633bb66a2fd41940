package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
	"github.com/iliyamo/airline-seat-reservation/internal/utils"
)

// CustomerRepo provides access to customer accounts.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the given DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create registers a new customer, hashing the password with bcrypt
// at the given cost.  Returns ErrEmailTaken when the email already
// has an account.
func (r *CustomerRepo) Create(ctx context.Context, name, email, password, phone, role string, bcryptCost int) (uint64, error) {
	var exists int
	const check = `SELECT COUNT(*) FROM customers WHERE email = ?`
	if err := r.db.QueryRowContext(ctx, check, email).Scan(&exists); err != nil {
		return 0, err
	}
	if exists > 0 {
		return 0, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return 0, err
	}

	const q = `INSERT INTO customers (name, email, password_hash, phone, role, created_at)
	           VALUES (?, ?, ?, ?, ?, UTC_TIMESTAMP())`
	res, err := r.db.ExecContext(ctx, q, name, email, hash, phone, role)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail loads a customer account for login.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const q = `SELECT customer_id, name, email, password_hash, phone, role, created_at
	           FROM customers WHERE email = ?`
	var c model.Customer
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Phone, &c.Role, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}
