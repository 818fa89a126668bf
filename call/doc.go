// Package call binds operation bodies to a transport and exposes the
// three ways to invoke them.
//
// An operation is a [Func]: a body that makes one transport call and
// shapes the response. [Bind] ties a body to a [rest.Requester] head at
// client construction, yielding an [Op] with three modes:
//
//   - [Op.Call] runs the body on the caller's goroutine and returns the
//     materialized result.
//   - [Op.Start] runs the body in its own goroutine and returns a
//     [Pending] the caller resolves later.
//   - [Op.Job] runs the body against a recorder, so the transport call is
//     captured as a [batch.Job] instead of being sent.
//
// # Awaiting a pending call
//
//	pending := op.Start(ctx, args)
//	// ... other work ...
//	result, err := pending.Result() // blocks until done
//
// [Pending.Done] exposes the completion channel for select loops, and
// [Pending.Cancel] aborts the underlying call.
//
// # Capturing a job
//
// Only operations bound with [Batchable] can be captured:
//
//	op := call.Bind("check", head, checkBody, call.Batchable())
//	job, err := op.Job(ctx, args, batch.WithID("7"))
package call
