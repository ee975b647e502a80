// Package handler holds the HTTP handlers the router mounts.
//
// Only system endpoints live here; the LightBnB operations are exposed
// through the service package.
package handler

import "github.com/deppfellow/lightbnb/internal/server"

// Handler is embedded by concrete handlers for access to the shared
// server dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
