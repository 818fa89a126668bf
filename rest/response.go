package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response carries the outcome of a successful transport call: the status
// code, the response headers, and the raw body. A recorded call yields a
// Response with a zero status and an empty body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. Decoding an empty body is a
// no-op, which lets operation post-processing run unchanged against the
// empty response produced by a recorded call.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
