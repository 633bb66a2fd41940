package model

import "time"

// Customer roles accepted in the JWT "role" claim.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// Customer is a registered account.  Only the bcrypt hash of the
// password is ever stored, and it never leaves the server.
type Customer struct {
	ID           uint64    `json:"customer_id"` // customers.customer_id
	Name         string    `json:"name"`        // customers.name
	Email        string    `json:"email"`       // customers.email
	PasswordHash string    `json:"-"`           // customers.password_hash
	Phone        string    `json:"phone"`       // customers.phone
	Role         string    `json:"role"`        // customers.role
	CreatedAt    time.Time `json:"created_at"`  // customers.created_at
}
