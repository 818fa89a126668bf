package batch

import (
	"context"
	"errors"
	"sync"

	"github.com/lolzteam/antipublic-go/rest"
)

// ErrNoCall is returned by [Recorder.Job] when the operation body made no
// transport call; there is nothing to describe as a job.
var ErrNoCall = errors.New("no transport call was recorded")

// Recorder is a [rest.Requester] that swallows calls instead of sending
// them, remembering the most recent one. Operation bodies run against it
// unchanged: every recorded call yields an empty response, which decodes
// as a no-op.
type Recorder struct {
	mu       sync.Mutex
	last     *rest.Request
	captured int
}

// NewRecorder returns a Recorder with nothing captured yet.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Request records the call and returns an empty response. When a body
// makes more than one call, the last one wins.
func (rec *Recorder) Request(ctx context.Context, method, endpoint string, opts ...rest.RequestOption) (*rest.Response, error) {
	r, err := rest.NewRequest(method, endpoint, opts...)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	rec.last = &r
	rec.captured++
	rec.mu.Unlock()

	return &rest.Response{}, nil
}

// Calls reports how many transport calls have been recorded so far.
func (rec *Recorder) Calls() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	return rec.captured
}

// Job flattens the recorded call into a descriptor.
func (rec *Recorder) Job(opts ...JobOption) (Job, error) {
	rec.mu.Lock()
	last := rec.last
	rec.mu.Unlock()

	if last == nil {
		return Job{}, ErrNoCall
	}

	return fromRequest(*last, opts...)
}
