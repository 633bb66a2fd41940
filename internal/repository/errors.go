// Package repository implements MySQL persistence for the engine.
// Each table gets its own repository struct over *sql.DB; methods
// that must participate in a booking or flight-creation transaction
// carry a Tx suffix and take the caller's *sql.Tx.  This file defines
// sentinel errors shared across repositories so handlers can
// distinguish failure scenarios with errors.Is.
package repository

import "errors"

// ErrPromotionNotFound is returned when a promotion lookup or delete
// matches no row.
var ErrPromotionNotFound = errors.New("promotion not found")

// ErrNewsNotFound is returned when a news article does not exist.
var ErrNewsNotFound = errors.New("news not found")

// ErrAirportNotFound is returned when an airport lookup yields no rows.
var ErrAirportNotFound = errors.New("airport not found")

// ErrEmailTaken is returned when registering with an email that
// already has an account.
var ErrEmailTaken = errors.New("email already registered")

// ErrCustomerNotFound is returned when no account matches the given
// credentials or id.
var ErrCustomerNotFound = errors.New("customer not found")
