package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Users        *UserService
	Reservations *ReservationService
	Properties   *PropertyService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	policy := DefaultRetryPolicy()
	limit := s.Config.Search.DefaultLimit

	return &Services{
		Users:        NewUserService(repos.Users, s.Logger, policy),
		Reservations: NewReservationService(repos.Reservations, s.Logger, policy, limit),
		Properties:   NewPropertyService(repos.Properties, s.Logger, policy, limit),
	}
}
