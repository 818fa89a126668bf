package throttle_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lolzteam/antipublic-go/rest/throttle"
)

func ExampleNewRoundTripper() {
	rt, err := throttle.NewRoundTripper(
		time.Second, // minimum interval between requests
		func() *slog.Logger { return slog.Default() },
		http.DefaultTransport,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = &http.Client{Transport: rt}

	fmt.Println("throttled transport created")
	// Output: throttled transport created
}
