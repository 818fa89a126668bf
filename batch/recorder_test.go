package batch_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lolzteam/antipublic-go/batch"
	"github.com/lolzteam/antipublic-go/rest"
)

// testContext returns a context canceled when the test ends; it stands
// in for testing.T.Context, which requires a newer Go toolchain.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func TestRecorder_CapturesCall(t *testing.T) {
	rec := batch.NewRecorder()

	resp, err := rec.Request(testContext(t), http.MethodPost, "/checkLines",
		rest.WithJSON(rest.Params{"lines": []string{"a:b"}, "insert": false}),
	)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// The recorded call yields an empty response that decodes as a no-op.
	var out struct {
		Checked int `json:"checked"`
	}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("decoding the empty response must not fail: %v", err)
	}
	if resp.Text() != "" {
		t.Errorf("expected empty body, got %q", resp.Text())
	}

	job, err := rec.Job(batch.WithID("42"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := batch.Job{
		ID:     "42",
		Method: http.MethodPost,
		URI:    "/checkLines",
		Params: rest.Params{"lines": []string{"a:b"}, "insert": false},
	}
	if diff := cmp.Diff(want, job); diff != "" {
		t.Errorf("job mismatch; diff:\n%s", diff)
	}
}

func TestRecorder_NoCall(t *testing.T) {
	rec := batch.NewRecorder()

	if _, err := rec.Job(); !errors.Is(err, batch.ErrNoCall) {
		t.Errorf("expected ErrNoCall, got: %v", err)
	}
}

func TestRecorder_LastCallWins(t *testing.T) {
	rec := batch.NewRecorder()

	if _, err := rec.Request(testContext(t), http.MethodGet, "/first"); err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Request(testContext(t), http.MethodGet, "/second"); err != nil {
		t.Fatal(err)
	}

	if got := rec.Calls(); got != 2 {
		t.Errorf("expected 2 recorded calls, got %d", got)
	}

	job, err := rec.Job()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if job.URI != "/second" {
		t.Errorf("expected the last call to win, got %s", job.URI)
	}
}

func TestRecorder_RejectsBadCall(t *testing.T) {
	rec := batch.NewRecorder()

	if _, err := rec.Request(testContext(t), "", "/x"); err == nil {
		t.Error("expected error for empty method")
	}
	if got := rec.Calls(); got != 0 {
		t.Errorf("a rejected call must not be recorded, got %d", got)
	}
}
