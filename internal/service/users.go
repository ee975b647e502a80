package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
)

// UserStore is the persistence behind UserService.
type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*repository.User, error)
	GetUserWithID(ctx context.Context, id int64) (*repository.User, error)
	AddUser(ctx context.Context, user repository.NewUser) (*repository.User, error)
}

type UserService struct {
	store  UserStore
	log    *zerolog.Logger
	policy RetryPolicy
}

func NewUserService(store UserStore, log *zerolog.Logger, policy RetryPolicy) *UserService {
	return &UserService{store: store, log: log, policy: policy}
}

func (s *UserService) GetUserWithEmail(ctx context.Context, email string) (*repository.User, error) {
	return run(ctx, s.log, s.policy, "get_user_with_email", readRetryable,
		func(ctx context.Context) (*repository.User, error) {
			return s.store.GetUserWithEmail(ctx, email)
		})
}

func (s *UserService) GetUserWithID(ctx context.Context, id int64) (*repository.User, error) {
	return run(ctx, s.log, s.policy, "get_user_with_id", readRetryable,
		func(ctx context.Context) (*repository.User, error) {
			return s.store.GetUserWithID(ctx, id)
		})
}

// AddUser stores the user as given. A duplicate email surfaces as a
// unique violation.
func (s *UserService) AddUser(ctx context.Context, user repository.NewUser) (*repository.User, error) {
	return run(ctx, s.log, s.policy, "add_user", writeRetryable,
		func(ctx context.Context) (*repository.User, error) {
			return s.store.AddUser(ctx, user)
		})
}
