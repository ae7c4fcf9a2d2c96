package cache

import (
	"context"
	"errors"
	"io"
	"net"
	"time"
)

// Backoff used when talking to a remote backend.
const (
	backendAttempts = 3
	backendDelay    = 200 * time.Millisecond
)

// RetryableError marks a backend failure that may succeed on a later attempt.
type RetryableError struct{ Err error }

// Retryable marks err as retryable. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or an error it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Retry calls fn until it succeeds, returns a non-retryable error or
// attempts run out. The delay doubles after every retryable failure.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}

// transient marks connection-level failures as retryable. Timeouts and
// dropped connections qualify; server replies such as WRONGTYPE do not.
func transient(err error) error {
	var ne net.Error
	if errors.As(err, &ne) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return Retryable(err)
	}
	return err
}

// unwrapRetryable strips the retry marker so callers see the backend error.
func unwrapRetryable(err error) error {
	var re *RetryableError
	if errors.As(err, &re) {
		return re.Err
	}
	return err
}
