// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, New Relic tracing, request
// logging, panic recovery and the global error handler.
package middleware
