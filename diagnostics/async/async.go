// Package async wraps an msgpack.Diagnostics so that its callbacks never
// block the caller: events are queued to a bounded channel and drained by
// a small worker pool, dropping on backpressure.
package async

import (
	"sync"

	"github.com/unkn0wn-root/msgpack"
)

// Diagnostics wraps an inner msgpack.Diagnostics, dispatching its events
// through a bounded worker pool so that OnDecodeError/OnEncodeRejected/
// OnDepthExceeded never block the codec's hot path.
type Diagnostics struct {
	inner msgpack.Diagnostics
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ msgpack.Diagnostics = (*Diagnostics)(nil)

// New starts workers goroutines (1 when workers <= 0) draining a queue of
// length qlen (1024 when qlen <= 0) that forward events to inner.
func New(inner msgpack.Diagnostics, workers, qlen int) *Diagnostics {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	d := &Diagnostics{inner: inner, q: make(chan func(), qlen)}
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer d.wg.Done()
			for f := range d.q {
				f()
			}
		}()
	}
	return d
}

// Close stops accepting new events and waits for the queue to drain.
func (d *Diagnostics) Close() {
	d.once.Do(func() {
		close(d.q)
		d.wg.Wait()
	})
}

func (d *Diagnostics) try(f func()) {
	// After Close the queue is closed and a send panics; drop the event.
	defer func() { _ = recover() }()
	select {
	case d.q <- f:
	default: // drop
	}
}

func (d *Diagnostics) OnDecodeError(kind msgpack.Kind, offset int) {
	d.try(func() { d.inner.OnDecodeError(kind, offset) })
}

func (d *Diagnostics) OnEncodeRejected(kind msgpack.Kind, size uint64) {
	d.try(func() { d.inner.OnEncodeRejected(kind, size) })
}

func (d *Diagnostics) OnDepthExceeded(depth int) {
	d.try(func() { d.inner.OnDepthExceeded(depth) })
}
