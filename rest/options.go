package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error

type options struct {
	client    *http.Client
	rt        http.RoundTripper
	timeout   *time.Duration
	userAgent string
	proxy     *url.URL
	delay     *time.Duration
	retry     *retryConfig
	logger    *slog.Logger
	tracer    trace.Tracer
}

// WithHTTPClient replaces the default [http.Client] used by the [Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying
// [http.Client]. The default is 90 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(c *options) error {
		c.userAgent = header
		return nil
	}
}

// WithProxy routes all requests through the proxy at rawURL. It cannot be
// combined with [WithTransport]; configure the proxy on the custom
// transport instead.
func WithProxy(rawURL string) Option {
	return func(c *options) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("parsing proxy url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("proxy url[%s] must include scheme and host", rawURL)
		}
		c.proxy = u
		return nil
	}
}

// WithDelay enforces a minimum interval between consecutive requests.
func WithDelay(d time.Duration) Option {
	return func(c *options) error {
		if d <= 0 {
			return errors.New("delay must be greater than zero")
		}
		c.delay = &d
		return nil
	}
}

// WithRetry configures the retry policy for transient transport faults:
// up to attempts extra tries, a fixed interval apart. The default is
// 10 attempts 500ms apart. Zero attempts disables retries.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(c *options) error {
		if attempts < 0 {
			return errors.New("attempts must not be negative")
		}
		if interval <= 0 {
			return errors.New("interval must be greater than zero")
		}
		c.retry = &retryConfig{attempts: uint64(attempts), interval: interval}
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithTracer records a span for every request with the given tracer.
// Without it, spans are no-ops.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		c.tracer = tracer
		return nil
	}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}

// RequestOption attaches a parameter group to a single call.
type RequestOption func(*Request) error

// WithQuery sets the query string group. Entries with an [Unset] value are
// stripped before encoding.
func WithQuery(p Params) RequestOption {
	return func(r *Request) error {
		r.Query = p
		return nil
	}
}

// WithForm sets the form-encoded body group.
func WithForm(p Params) RequestOption {
	return func(r *Request) error {
		r.Form = p
		return nil
	}
}

// WithJSON sets the JSON body group.
func WithJSON(p Params) RequestOption {
	return func(r *Request) error {
		r.JSON = p
		return nil
	}
}

// WithHeader adds a header to the outgoing request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) error {
		if key == "" {
			return errors.New("header key must not be empty")
		}
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Add(key, value)
		return nil
	}
}
