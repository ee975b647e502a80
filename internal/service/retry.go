package service

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// RetryPolicy bounds how often and how fast an operation is retried.
type RetryPolicy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
	}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	exp.MaxElapsedTime = 0

	retries := uint64(0)
	if p.MaxAttempts > 1 {
		retries = p.MaxAttempts - 1
	}

	return backoff.WithContext(backoff.WithMaxRetries(exp, retries), ctx)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// readRetryable reports whether a read may be repeated after err.
func readRetryable(err error) bool {
	return sqlerr.IsTransient(err)
}

// writeRetryable is stricter: an insert is only repeated when the
// driver guarantees nothing reached the server.
func writeRetryable(err error) bool {
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr) || pgconn.SafeToRetry(err)
}

// run executes fn under the policy and logs the final outcome. When the
// caller's context ends mid-retry the last driver error is joined to the
// context error so the cause is not lost.
func run[T any](
	ctx context.Context,
	log *zerolog.Logger,
	policy RetryPolicy,
	operation string,
	retryable func(error) bool,
	fn func(context.Context) (T, error),
) (T, error) {
	attempt := 0
	var lastErr error

	result, err := backoff.RetryNotifyWithData(
		func() (T, error) {
			attempt++
			res, err := fn(ctx)
			lastErr = err
			if err != nil && !retryable(err) {
				return res, backoff.Permanent(err)
			}
			return res, err
		},
		policy.backOff(ctx),
		func(err error, wait time.Duration) {
			log.Warn().
				Err(err).
				Str("operation", operation).
				Int("attempt", attempt).
				Dur("retry_in", wait).
				Msg("retrying database operation")
		},
	)

	if isContextErr(err) && lastErr != nil && !errors.Is(err, lastErr) {
		err = errors.Join(err, lastErr)
	}

	outcome := repository.Classify(err)
	var event *zerolog.Event
	switch outcome {
	case repository.Failed:
		event = log.Error().Err(err)
	default:
		event = log.Debug()
	}
	event.
		Str("operation", operation).
		Str("outcome", outcome.String()).
		Int("attempts", attempt).
		Msg("database operation finished")

	return result, err
}
