// Package batch captures transport calls as job descriptors and collects
// them into batch payloads.
//
// A [Job] is one deferred call: an id, a verb, an endpoint, and the
// flattened parameters of the call. Jobs come from three places: recording
// an operation (see the call package), building one directly with
// [NewJob], or filling in the struct by hand.
//
// # Recording
//
// [Recorder] implements [rest.Requester]. An operation body run against it
// has its transport call captured instead of sent:
//
//	rec := batch.NewRecorder()
//	_, _ = body(ctx, rec, args)      // the call is swallowed
//	job, err := rec.Job(batch.WithID("7"))
//
// Every recorded call yields an empty response, so bodies that decode
// their response work unchanged. A body that never calls the transport
// produces [ErrNoCall].
//
// # Payloads
//
// [Payload] accumulates jobs for a single submission, validating each one
// and rejecting duplicate ids. It marshals as the JSON array the batch
// executor consumes:
//
//	p := batch.NewPayload()
//	err := p.Add(job1, job2)
//	body, err := json.Marshal(p)
package batch
