package repository

import "github.com/deppfellow/lightbnb/internal/sqlerr"

// Outcome classifies the result of a repository call so callers can
// branch on it instead of guessing from an absent value.
type Outcome int

const (
	// Found means the call succeeded. For lists this includes an empty result.
	Found Outcome = iota
	// NotFound means a single-row lookup matched nothing.
	NotFound
	// Failed means the operation itself did not complete.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Classify maps the error returned by a repository method onto an Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return Found
	case sqlerr.IsNotFound(err):
		return NotFound
	default:
		return Failed
	}
}
