// Package repository handles all interactions with the database.
//
// It contains the SQL for users, reservations and properties and maps
// result rows onto plain records. Every method performs exactly one
// round trip through a database.Querier, so the pool is injected and
// tests can substitute a fake store.
//
// Errors are never swallowed: a lookup that matches nothing returns an
// error for which sqlerr.IsNotFound is true, list queries return an
// empty slice, and any other failure is returned wrapped with its cause.
package repository

import (
	"github.com/deppfellow/lightbnb/internal/database"
)

// DefaultLimit caps list queries when the caller passes no limit.
const DefaultLimit = 10

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository
}

// NewRepositories constructs every repository on top of the same store,
// normally the application's *pgxpool.Pool.
func NewRepositories(db database.Querier) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Reservations: NewReservationRepository(db),
		Properties:   NewPropertyRepository(db),
	}
}

func effectiveLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
