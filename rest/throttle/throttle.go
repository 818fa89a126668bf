package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// throttle is an http.RoundTripper, using the time/rate limiter to
// enforce a minimum interval between consecutive outbound calls.
type throttle struct {
	limiter *rate.Limiter
	delay   time.Duration
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

// NewRoundTripper returns an http.RoundTripper that spaces outbound
// requests at least delay apart. The first request goes out immediately.
// logFn lazily resolves the logger at request time, making option ordering
// irrelevant; a nil-returning logFn silences wait logging.
func NewRoundTripper(delay time.Duration, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("delay[%s] %w", delay, ErrMustNotBeZero)
	}

	t := &throttle{
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		delay:   delay,
		next:    next,
		logFn:   logFn,
	}

	return t, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.limiter == nil {
		return t.next.RoundTrip(r)
	}

	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	var waited time.Duration
	var logger *slog.Logger
	if t.logFn != nil {
		logger = t.logFn()
	}
	if logger != nil && t.limiter.Tokens() < 1 {
		logger.Info("throttle delay in force", "delay", t.delay.String(), "path", r.URL.Path)

		defer func() {
			logger.Info("throttle wait complete", "waited", waited.String(), "delay", t.delay.String())
		}()
	}

	start := time.Now()

	err := t.limiter.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}
