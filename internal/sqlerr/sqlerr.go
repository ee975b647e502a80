// Package sqlerr specifically handles database driver errors.
//
// It classifies pgx/pgconn errors (constraint violations, missing rows,
// lost connections) and converts them into user-friendly errs.HTTPError
// values, e.g. a unique violation on users.email becomes a 400
// "A User with this Email already exists".
package sqlerr
