// Package errs defines the error shapes returned to API clients.
//
// Repositories return plain wrapped driver errors; the edge of the
// application (sqlerr.HandleError and the global error handler) turns
// them into an HTTPError with a stable machine code and a message that
// is safe to show.
package errs
