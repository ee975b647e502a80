package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
)

type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]repository.ReservationListing, error)
}

type ReservationService struct {
	store        ReservationStore
	log          *zerolog.Logger
	policy       RetryPolicy
	defaultLimit int
}

func NewReservationService(store ReservationStore, log *zerolog.Logger, policy RetryPolicy, defaultLimit int) *ReservationService {
	return &ReservationService{store: store, log: log, policy: policy, defaultLimit: defaultLimit}
}

// GetAllReservations lists a guest's reservations. A limit <= 0 uses the
// configured default.
func (s *ReservationService) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]repository.ReservationListing, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	return run(ctx, s.log, s.policy, "get_all_reservations", readRetryable,
		func(ctx context.Context) ([]repository.ReservationListing, error) {
			return s.store.GetAllReservations(ctx, guestID, limit)
		})
}
