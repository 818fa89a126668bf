// Package throttle provides an [http.RoundTripper] that enforces a
// minimum interval between consecutive outbound HTTP requests, built on
// [golang.org/x/time/rate].
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		time.Second, // minimum interval between requests
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When a request arrives before the interval has elapsed, it blocks until
// its turn comes or the request context is cancelled.
package throttle
