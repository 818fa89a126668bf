package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/lolzteam/antipublic-go/rest/throttle"
)

// defaultTimeout bounds a whole exchange, connection to body read.
const defaultTimeout = 90 * time.Second

// Requester is the transport contract operations run against. The live
// implementation is [Client], which sends the call over HTTP; a recording
// implementation may capture the call instead of sending it.
type Requester interface {
	Request(ctx context.Context, method, endpoint string, opts ...RequestOption) (*Response, error)
}

// Request describes one transport call before it becomes an
// [*http.Request]: the verb, the endpoint path relative to the base URL,
// and the parameter groups it carries. All three groups may be populated
// here; the one-body rule is enforced only when the call goes on the wire.
type Request struct {
	Method   string
	Endpoint string
	Query    Params
	Form     Params
	JSON     Params
	Header   http.Header
}

// NewRequest applies opts to a Request for the given method and endpoint.
func NewRequest(method, endpoint string, opts ...RequestOption) (Request, error) {
	r := Request{Method: method, Endpoint: endpoint}

	if method == "" {
		return r, errors.New("method must not be empty")
	}
	if !strings.HasPrefix(endpoint, "/") {
		return r, fmt.Errorf("endpoint[%s] must begin with a slash", endpoint)
	}

	for _, opt := range opts {
		if err := opt(&r); err != nil {
			return r, err
		}
	}

	return r, nil
}

// Client executes calls against the service over HTTP. It wraps the
// std-lib *http.Client with bearer authentication, parameter-group
// encoding, retries, and optional throttling. Build one with [Build].
type Client struct {
	c       *http.Client
	baseURL *url.URL
	token   string
	retry   retryConfig
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Build constructs a [Client] for the service at baseURL, authenticating
// every call with the given bearer token.
func Build(baseURL, token string, optFns ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url[%s] must include scheme and host", baseURL)
	}
	if token == "" {
		return nil, errors.New("token must not be empty")
	}

	client := &Client{
		c:       &http.Client{Timeout: defaultTimeout},
		baseURL: base,
		token:   token,
		retry:   retryConfig{attempts: defaultRetryAttempts, interval: defaultRetryInterval},
		logger:  slog.Default(),
		tracer:  noop.NewTracerProvider().Tracer("rest"),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}
	if opts.logger != nil {
		client.logger = opts.logger
	}
	if opts.tracer != nil {
		client.tracer = opts.tracer
	}
	if opts.retry != nil {
		client.retry = *opts.retry
	}
	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		if opts.proxy != nil {
			return nil, errors.New("proxy cannot be combined with a custom transport")
		}
		transport = opts.rt
	case opts.proxy != nil:
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.Proxy = http.ProxyURL(opts.proxy)
		transport = t
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.delay != nil {
		rt, err := throttle.NewRoundTripper(*opts.delay, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Request performs one call against the service and returns the raw
// response. A non-2xx status surfaces as a [*StatusError]; transient
// transport faults are retried per the configured policy before the
// final error is returned.
func (c *Client) Request(ctx context.Context, method, endpoint string, opts ...RequestOption) (*Response, error) {
	req, err := NewRequest(method, endpoint, opts...)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, req)
}

func (c *Client) do(ctx context.Context, r Request) (*Response, error) {
	form, body := TrimUnset(r.Form), TrimUnset(r.JSON)
	if len(form) > 0 && len(body) > 0 {
		return nil, ErrBodyConflict
	}

	payload, contentType, err := encodePayload(form, body)
	if err != nil {
		return nil, err
	}
	reqURL := c.url(r)

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "rest.request", trace.WithAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("endpoint", r.Endpoint),
		attribute.String("request_id", requestID),
	))
	defer span.End()

	start := time.Now()
	resp, err := c.withRetry(ctx, func() (*Response, error) {
		return c.attempt(ctx, r, reqURL, payload, contentType, requestID)
	})
	if err != nil {
		span.RecordError(err)
		c.logger.Debug("request failed",
			"method", r.Method, "endpoint", r.Endpoint, "request_id", requestID, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("request complete",
		"method", r.Method, "endpoint", r.Endpoint, "status", resp.StatusCode,
		"took", time.Since(start), "request_id", requestID)

	return resp, nil
}

// attempt performs a single exchange against the service.
func (c *Client) attempt(ctx context.Context, r Request, reqURL *url.URL, payload []byte, contentType, requestID string) (*Response, error) {
	var body io.Reader
	if len(payload) > 0 {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vals := range r.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exec http do: %w", err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			c.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode/100 != 2 {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return nil, statusErr(resp.StatusCode, string(b))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

// url joins the base URL with the endpoint path and the encoded query group.
func (c *Client) url(r Request) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + r.Endpoint

	if query := TrimUnset(r.Query); len(query) > 0 {
		vals := url.Values{}
		for k, v := range query {
			vals.Add(k, fmt.Sprint(v))
		}
		u.RawQuery = vals.Encode()
	}

	return &u
}

// encodePayload renders the body group as wire bytes. Groups arrive
// already trimmed; at most one is non-empty.
func encodePayload(form, body Params) ([]byte, string, error) {
	switch {
	case len(form) > 0:
		vals := url.Values{}
		for k, v := range form {
			vals.Add(k, fmt.Sprint(v))
		}
		return []byte(vals.Encode()), "application/x-www-form-urlencoded", nil

	case len(body) > 0:
		b, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("encoding request payload: %w", err)
		}
		return b, "application/json", nil
	}

	return nil, "", nil
}
