package rest_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lolzteam/antipublic-go/rest"
)

func TestTrimUnset(t *testing.T) {
	testCases := []struct {
		name string
		in   rest.Params
		want rest.Params
	}{
		{
			name: "Drops unset entries",
			in:   rest.Params{"a": 1, "b": rest.Unset, "c": "x"},
			want: rest.Params{"a": 1, "c": "x"},
		},
		{
			name: "Keeps falsy values",
			in:   rest.Params{"zero": 0, "empty": "", "no": false},
			want: rest.Params{"zero": 0, "empty": "", "no": false},
		},
		{
			name: "Nil input yields empty map",
			in:   nil,
			want: rest.Params{},
		},
		{
			name: "All unset yields empty map",
			in:   rest.Params{"a": rest.Unset, "b": rest.Unset},
			want: rest.Params{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rest.TrimUnset(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("trimmed params mismatch; diff:\n%s", diff)
			}

			// Trimming twice changes nothing.
			again := rest.TrimUnset(got)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("TrimUnset is not idempotent; diff:\n%s", diff)
			}
		})
	}
}

func TestUnset_RefusesSerialization(t *testing.T) {
	if _, err := json.Marshal(rest.Params{"a": rest.Unset}); err == nil {
		t.Error("marshaling an untrimmed group should fail")
	}
}

func TestOptHelpers(t *testing.T) {
	if got := rest.OptString("x"); got != "x" {
		t.Errorf("OptString(x) = %v", got)
	}
	if got := rest.OptString(""); got != rest.Unset {
		t.Errorf("OptString(\"\") should be Unset, got %v", got)
	}

	if got := rest.OptInt(7); got != 7 {
		t.Errorf("OptInt(7) = %v", got)
	}
	if got := rest.OptInt(0); got != rest.Unset {
		t.Errorf("OptInt(0) should be Unset, got %v", got)
	}

	m := map[string]int{"a": 1}
	if got := rest.OptMap(m); got == rest.Unset {
		t.Error("OptMap(non-nil) should not be Unset")
	}
	if got := rest.OptMap[string, int](nil); got != rest.Unset {
		t.Errorf("OptMap(nil) should be Unset, got %v", got)
	}
}

func TestResponse_Decode(t *testing.T) {
	resp := &rest.Response{Body: []byte(`{"count": 42}`)}

	var out struct {
		Count int `json:"count"`
	}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.Count != 42 {
		t.Errorf("expected count=42, got %d", out.Count)
	}
}

func TestResponse_DecodeEmptyBody(t *testing.T) {
	resp := &rest.Response{}

	out := struct {
		Count int `json:"count"`
	}{Count: -1}

	// Decoding an empty body must be a no-op, leaving the target untouched.
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.Count != -1 {
		t.Errorf("decode of empty body must not modify the target, got %d", out.Count)
	}
}

func TestResponse_DecodeMalformedBody(t *testing.T) {
	resp := &rest.Response{Body: []byte(`not json`)}

	var out map[string]any
	if err := resp.Decode(&out); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestResponse_Text(t *testing.T) {
	resp := &rest.Response{Body: []byte("123456")}
	if got := resp.Text(); got != "123456" {
		t.Errorf("expected text 123456, got %q", got)
	}
}
