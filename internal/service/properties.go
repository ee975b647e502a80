package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
)

type PropertyStore interface {
	GetAllProperties(ctx context.Context, filter repository.PropertyFilter, limit int) ([]repository.PropertyListing, error)
	AddProperty(ctx context.Context, property repository.NewProperty) (*repository.Property, error)
}

type PropertyService struct {
	store        PropertyStore
	log          *zerolog.Logger
	policy       RetryPolicy
	defaultLimit int
}

func NewPropertyService(store PropertyStore, log *zerolog.Logger, policy RetryPolicy, defaultLimit int) *PropertyService {
	return &PropertyService{store: store, log: log, policy: policy, defaultLimit: defaultLimit}
}

// GetAllProperties searches properties. A limit <= 0 uses the configured
// default.
func (s *PropertyService) GetAllProperties(ctx context.Context, filter repository.PropertyFilter, limit int) ([]repository.PropertyListing, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	return run(ctx, s.log, s.policy, "get_all_properties", readRetryable,
		func(ctx context.Context) ([]repository.PropertyListing, error) {
			return s.store.GetAllProperties(ctx, filter, limit)
		})
}

// AddProperty inserts a property. An unknown owner surfaces as a
// foreign key violation.
func (s *PropertyService) AddProperty(ctx context.Context, property repository.NewProperty) (*repository.Property, error) {
	return run(ctx, s.log, s.policy, "add_property", writeRetryable,
		func(ctx context.Context) (*repository.Property, error) {
			return s.store.AddProperty(ctx, property)
		})
}
