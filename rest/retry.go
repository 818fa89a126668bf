package rest

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRetryAttempts = 10
	defaultRetryInterval = 500 * time.Millisecond
)

// retryConfig is the retry policy for transient transport faults:
// up to attempts extra tries, a fixed interval apart.
type retryConfig struct {
	attempts uint64
	interval time.Duration
}

// withRetry runs fn until it succeeds, fails permanently, or the attempt
// budget is spent. The last attempt's error is returned as-is. A done
// context stops the loop regardless of the fault class.
func (c *Client) withRetry(ctx context.Context, fn func() (*Response, error)) (*Response, error) {
	var resp *Response

	operation := func() error {
		r, err := fn()
		if err != nil {
			if ctx.Err() != nil || !IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		resp = r
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("transient transport fault, retrying", "error", err, "wait", wait)
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retry.interval), c.retry.attempts),
		ctx,
	)
	if err := backoff.RetryNotify(operation, bo, notify); err != nil {
		return nil, err
	}

	return resp, nil
}

// IsTransient reports whether err is a transport fault worth retrying:
// a timeout, a failed or dropped connection, or another network-level
// fault. Unexpected statuses are never transient; the service answered.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}

	var oe *net.OpError
	if errors.As(err, &oe) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
