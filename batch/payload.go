package batch

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Payload accumulates job descriptors for one batch submission. It keeps
// insertion order, validates every job as it is added, and rejects
// duplicate ids, which the batch executor would otherwise conflate.
type Payload struct {
	mu   sync.Mutex
	jobs []Job
	ids  map[string]struct{}
}

// NewPayload returns an empty Payload.
func NewPayload() *Payload {
	return &Payload{ids: make(map[string]struct{})}
}

// Add validates the given jobs and appends them. The payload is left
// unchanged when any job is rejected.
func (p *Payload) Add(jobs ...Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("job %q: %w", j.ID, err)
		}

		if _, dup := p.ids[j.ID]; dup {
			return fmt.Errorf("job %q: duplicate id", j.ID)
		}
		if _, dup := seen[j.ID]; dup {
			return fmt.Errorf("job %q: duplicate id", j.ID)
		}
		seen[j.ID] = struct{}{}
	}

	for _, j := range jobs {
		p.ids[j.ID] = struct{}{}
		p.jobs = append(p.jobs, j)
	}

	return nil
}

// Len reports the number of accumulated jobs.
func (p *Payload) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.jobs)
}

// Jobs returns the accumulated descriptors in insertion order.
func (p *Payload) Jobs() []Job {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Job, len(p.jobs))
	copy(out, p.jobs)

	return out
}

// MarshalJSON renders the payload as a JSON array of jobs, the shape the
// batch executor consumes.
func (p *Payload) MarshalJSON() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.jobs == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(p.jobs)
}
