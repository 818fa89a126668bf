package throttle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRoundTripper_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		delay  time.Duration
		expErr error
	}{
		{
			name:   "Invalid delay (zero)",
			delay:  0,
			expErr: ErrMustNotBeZero,
		},
		{
			name:   "Invalid delay (negative)",
			delay:  -time.Second,
			expErr: ErrMustNotBeZero,
		},
		{
			name:  "Valid input",
			delay: 100 * time.Millisecond,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt, err := NewRoundTripper(tc.delay, func() *slog.Logger { return nil }, http.DefaultTransport)

			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Errorf("exp err %v; got: %v", tc.expErr, err)
				}
			} else {
				if err != nil {
					t.Errorf("exp nil err, got: %v", err)
				}

				if rt == nil {
					t.Error("exp non-nil RoundTripper")
				}
			}
		})
	}
}

func TestThrottleRoundTripper_Spacing(t *testing.T) {
	var callCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&callCount, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	const delay = 100 * time.Millisecond

	rt, err := NewRoundTripper(delay, func() *slog.Logger { return nil }, http.DefaultTransport)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Transport: rt}

	start := time.Now()
	for i := 0; i < 3; i++ {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		resp.Body.Close()
	}
	took := time.Since(start)

	// First request is free, the next two wait a full interval each.
	if minTotal := 2 * delay; took < minTotal {
		t.Errorf("3 requests should take at least %v, took %v", minTotal, took)
	}

	if got := atomic.LoadInt32(&callCount); got != 3 {
		t.Errorf("exp 3 calls to reach the server, got %d", got)
	}
}

func TestThrottleRoundTripper_FirstRequestImmediate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRoundTripper(500*time.Millisecond, func() *slog.Logger { return nil }, http.DefaultTransport)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Transport: rt}

	start := time.Now()
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if took := time.Since(start); took > 250*time.Millisecond {
		t.Errorf("first request should not wait, took %v", took)
	}
}

func TestThrottleRoundTripper_ContextEnded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRoundTripper(time.Second, func() *slog.Logger { return nil }, http.DefaultTransport)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Transport: rt}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.Do(req); !errors.Is(err, ErrContextEnded) {
		t.Errorf("exp ErrContextEnded, got: %v", err)
	}
}

func TestThrottleRoundTripper_WaitTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rt, err := NewRoundTripper(time.Second, func() *slog.Logger { return nil }, http.DefaultTransport)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Transport: rt}

	// Spend the free slot so the next request has to wait.
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.Do(req); !errors.Is(err, ErrWaitingFailed) {
		t.Errorf("exp ErrWaitingFailed, got: %v", err)
	}
}
