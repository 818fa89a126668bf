package batch

import (
	"math/rand"
	"strconv"

	"github.com/lolzteam/antipublic-go/rest"
)

// Job describes one call of a batch request: the transport call an
// operation would have made, flattened into the shape the batch executor
// consumes. Params holds the union of the call's parameter groups.
type Job struct {
	ID     string      `json:"id" validate:"required"`
	Method string      `json:"method" validate:"required,oneof=GET POST PUT PATCH DELETE"`
	URI    string      `json:"uri" validate:"required,startswith=/"`
	Params rest.Params `json:"params"`
}

// Validate reports whether the descriptor is well-formed: a non-empty id,
// a known method, and a rooted uri. Violations come back as [FieldErrors].
func (j Job) Validate() error {
	return check(j)
}

// JobOption adjusts a job descriptor at build time.
type JobOption func(*jobOpts)

type jobOpts struct {
	id string
}

// WithID sets the job id verbatim. Without it, a fresh random id is
// minted for each descriptor.
func WithID(id string) JobOption {
	return func(o *jobOpts) {
		o.id = id
	}
}

// NewJob builds a descriptor directly from a method, an endpoint, and
// request options, without running an operation body. The result is
// exactly what recording an operation issuing this call would produce.
func NewJob(method, endpoint string, reqOpts []rest.RequestOption, opts ...JobOption) (Job, error) {
	r, err := rest.NewRequest(method, endpoint, reqOpts...)
	if err != nil {
		return Job{}, err
	}

	return fromRequest(r, opts...)
}

// fromRequest flattens a call descriptor into a Job.
func fromRequest(r rest.Request, opts ...JobOption) (Job, error) {
	var jo jobOpts
	for _, opt := range opts {
		opt(&jo)
	}

	id := jo.id
	if id == "" {
		id = randomID()
	}

	return Job{
		ID:     id,
		Method: r.Method,
		URI:    r.Endpoint,
		Params: mergeGroups(r.Query, r.Form, r.JSON),
	}, nil
}

// mergeGroups flattens the parameter groups into a single map. Later
// groups win on key collision, and entries marked Unset never survive.
// The result is never nil, so an argumentless call renders as {}.
func mergeGroups(groups ...rest.Params) rest.Params {
	merged := rest.Params{}
	for _, g := range groups {
		for k, v := range rest.TrimUnset(g) {
			merged[k] = v
		}
	}

	return merged
}

// randomID mints the default job id: a random integer between 1 and
// 1,000,000 rendered as a string.
func randomID() string {
	return strconv.Itoa(rand.Intn(1_000_000) + 1)
}
