package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	getUserWithEmail = `SELECT id, name, email, password FROM users WHERE email = $1`
	getUserWithID    = `SELECT id, name, email, password FROM users WHERE id = $1`
	insertUser       = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email, password`
)

type UserRepository struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserWithEmail looks a user up by email. No match yields an error
// for which sqlerr.IsNotFound is true.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, getUserWithEmail, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUserWithID looks a user up by id.
func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, getUserWithID, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// AddUser inserts a user and returns the stored row with its new id.
// The password is stored as given.
func (r *UserRepository) AddUser(ctx context.Context, user NewUser) (*User, error) {
	created, err := scanUser(r.db.QueryRow(ctx, insertUser, user.Name, user.Email, user.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("users")
		}
		return nil, err
	}
	return &u, nil
}
