package batch_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lolzteam/antipublic-go/batch"
	"github.com/lolzteam/antipublic-go/rest"
)

func TestPayload_Add(t *testing.T) {
	p := batch.NewPayload()

	err := p.Add(
		batch.Job{ID: "1", Method: "GET", URI: "/version", Params: rest.Params{}},
		batch.Job{ID: "2", Method: "POST", URI: "/checkLines", Params: rest.Params{"insert": true}},
	)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if got := p.Len(); got != 2 {
		t.Errorf("expected 2 jobs, got %d", got)
	}

	jobs := p.Jobs()
	if jobs[0].ID != "1" || jobs[1].ID != "2" {
		t.Errorf("insertion order not preserved: %v", jobs)
	}
}

func TestPayload_AddInvalid(t *testing.T) {
	p := batch.NewPayload()

	err := p.Add(batch.Job{ID: "1", Method: "FETCH", URI: "/version"})

	var fields batch.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got: %T: %v", err, err)
	}
	if got := p.Len(); got != 0 {
		t.Errorf("rejected job must not be added, got %d", got)
	}
}

func TestPayload_RejectsDuplicateIDs(t *testing.T) {
	p := batch.NewPayload()

	if err := p.Add(batch.Job{ID: "7", Method: "GET", URI: "/version"}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if err := p.Add(batch.Job{ID: "7", Method: "GET", URI: "/countLines"}); err == nil {
		t.Error("expected error for duplicate id across calls")
	}

	err := p.Add(
		batch.Job{ID: "8", Method: "GET", URI: "/version"},
		batch.Job{ID: "8", Method: "GET", URI: "/countLines"},
	)
	if err == nil {
		t.Error("expected error for duplicate id within one call")
	}

	// A failed Add leaves the payload unchanged.
	if got := p.Len(); got != 1 {
		t.Errorf("expected 1 job after rejections, got %d", got)
	}
}

func TestPayload_MarshalJSON(t *testing.T) {
	p := batch.NewPayload()

	err := p.Add(batch.Job{
		ID:     "7",
		Method: "POST",
		URI:    "/checkLines",
		Params: rest.Params{"lines": []string{"a:b", "c:d"}, "insert": true},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("payload must marshal as a JSON array: %v", err)
	}

	want := []map[string]any{{
		"id":     "7",
		"method": "POST",
		"uri":    "/checkLines",
		"params": map[string]any{
			"lines":  []any{"a:b", "c:d"},
			"insert": true,
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload JSON mismatch; diff:\n%s", diff)
	}
}

func TestPayload_MarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(batch.NewPayload())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("empty payload must marshal as [], got %s", raw)
	}
}
