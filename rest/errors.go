package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrUnexpectedStatus is the sentinel error wrapped by [StatusError].
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrAuthFailure is joined with [ErrUnexpectedStatus] when the server
	// responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
	// ErrBodyConflict is returned when a single call carries both a form
	// group and a JSON group. The wire format allows at most one body.
	ErrBodyConflict = errors.New("form and json bodies are mutually exclusive")
)

// StatusError is returned when the service responds with a status code
// outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// statusErr builds the error for a non-2xx response, joining
// [ErrAuthFailure] for the two authorization statuses.
func statusErr(code int, body string) *StatusError {
	err := ErrUnexpectedStatus
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		err = errors.Join(ErrUnexpectedStatus, ErrAuthFailure)
	}

	return &StatusError{
		StatusCode: code,
		Body:       body,
		Err:        err,
	}
}
