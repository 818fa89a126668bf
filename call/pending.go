package call

import "context"

// Pending represents an in-flight or completed asynchronous call.
type Pending[R any] struct {
	done   chan struct{}
	result R
	err    error
	cancel context.CancelFunc
}

// Done returns a channel that is closed when the call completes.
func (p *Pending[R]) Done() <-chan struct{} {
	return p.done
}

// Result blocks until the call completes and returns its outcome. It may
// be called any number of times, from any goroutine; every call reports
// the same outcome.
func (p *Pending[R]) Result() (R, error) {
	<-p.done
	return p.result, p.err
}

// Cancel aborts the in-flight call. Result then reports the cancellation
// through the operation's error. Cancelling a completed call is a no-op.
func (p *Pending[R]) Cancel() {
	p.cancel()
}
