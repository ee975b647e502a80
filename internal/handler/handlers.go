package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups all HTTP handlers together with the services they
// call into.
type Handlers struct {
	Services *service.Services
	Health   *HealthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Services: services,
		Health:   NewHealthHandler(s),
	}
}
