package call

import (
	"context"
	"errors"
	"fmt"

	"github.com/lolzteam/antipublic-go/batch"
	"github.com/lolzteam/antipublic-go/rest"
)

// ErrNotBatchable is returned by [Op.Job] for operations bound without
// [Batchable].
var ErrNotBatchable = errors.New("operation cannot be captured as a batch job")

// Func is the body of one operation. It issues a single transport call
// against rq and shapes the response into R. Which Requester the body runs
// against is the invoker's choice, so the same body serves live calls and
// recorded ones.
type Func[A, R any] func(ctx context.Context, rq rest.Requester, args A) (R, error)

// Op is an operation body bound to a transport head, exposing the three
// invocation modes: [Op.Call] blocks, [Op.Start] runs asynchronously, and
// [Op.Job] captures instead of sending. The zero value is not usable;
// bind one with [Bind].
type Op[A, R any] struct {
	name      string
	head      rest.Requester
	fn        Func[A, R]
	batchable bool
}

// BindOption configures an operation at bind time.
type BindOption func(*bindOpts)

type bindOpts struct {
	batchable bool
}

// Batchable marks the operation as capturable into a batch job descriptor
// via [Op.Job]. Operations are not capturable by default.
func Batchable() BindOption {
	return func(o *bindOpts) {
		o.batchable = true
	}
}

// Bind attaches fn to the given transport head under name. Binding happens
// once, at client construction; a nil head or fn is a programming error
// and panics.
func Bind[A, R any](name string, head rest.Requester, fn Func[A, R], optFns ...BindOption) Op[A, R] {
	if name == "" {
		panic("call: bind: empty operation name")
	}
	if head == nil {
		panic("call: bind " + name + ": nil head")
	}
	if fn == nil {
		panic("call: bind " + name + ": nil func")
	}

	var opts bindOpts
	for _, opt := range optFns {
		opt(&opts)
	}

	return Op[A, R]{
		name:      name,
		head:      head,
		fn:        fn,
		batchable: opts.batchable,
	}
}

// Name returns the name the operation was bound under.
func (o Op[A, R]) Name() string {
	return o.name
}

// Call invokes the operation on the caller's goroutine and returns the
// materialized result.
func (o Op[A, R]) Call(ctx context.Context, args A) (R, error) {
	return o.fn(ctx, o.head, args)
}

// Start launches the operation in its own goroutine and returns the
// pending result immediately. The returned [Pending] resolves to exactly
// what [Op.Call] would have returned.
func (o Op[A, R]) Start(ctx context.Context, args A) *Pending[R] {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending[R]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer func() {
			cancel()
			close(p.done)
		}()

		p.result, p.err = o.fn(ctx, o.head, args)
	}()

	return p
}

// Job runs the operation body against a fresh [batch.Recorder] instead of
// the live transport and returns the captured call as a job descriptor.
// The body's return value is discarded; its error, if any, surfaces.
func (o Op[A, R]) Job(ctx context.Context, args A, opts ...batch.JobOption) (batch.Job, error) {
	if !o.batchable {
		return batch.Job{}, fmt.Errorf("%s: %w", o.name, ErrNotBatchable)
	}

	rec := batch.NewRecorder()
	if _, err := o.fn(ctx, rec, args); err != nil {
		return batch.Job{}, fmt.Errorf("recording %s: %w", o.name, err)
	}

	return rec.Job(opts...)
}
