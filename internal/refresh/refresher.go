// Package refresh provides the periodic tick source that drives a live
// stopwatch display. The cadence is owned here rather than by the
// stopwatch, which stays a pure state model.
//
// Every Start opens a new generation and every Stop closes it. A tick
// that was already queued when its generation closed is reported as
// stale, so a consumer never renders a read that was scheduled before a
// stop or reset.
package refresh

import (
	"sync"
	"time"
)

// DefaultInterval is used when a non-positive interval is requested.
const DefaultInterval = 10 * time.Millisecond

// Tick is a single refresh request.
type Tick struct {
	// Gen is the generation the tick was produced in.
	Gen uint64
	// At is the time the underlying ticker fired.
	At time.Time
}

// Refresher emits ticks at a fixed interval while started.
type Refresher struct {
	interval time.Duration
	ticks    chan Tick

	mu      sync.Mutex
	gen     uint64
	running bool
	ticker  *time.Ticker
	done    chan struct{}
}

// New creates a stopped Refresher.
func New(interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Refresher{
		interval: interval,
		ticks:    make(chan Tick, 1),
	}
}

// Interval returns the tick cadence.
func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Ticks returns the channel ticks are delivered on. The channel is never
// closed.
func (r *Refresher) Ticks() <-chan Tick {
	return r.ticks
}

// Start begins ticking. Calling Start on a running Refresher does nothing.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.gen++
	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})
	go r.worker(r.ticker, r.done, r.gen)
}

// Stop cancels ticking and invalidates any tick still queued.
// Calling Stop on a stopped Refresher does nothing.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	r.gen++
	r.ticker.Stop()
	close(r.done)
	r.ticker = nil
	r.done = nil
}

// Running reports whether the Refresher is ticking.
func (r *Refresher) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Stale reports whether t was produced by a generation that has since
// been stopped.
func (r *Refresher) Stale(t Tick) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.running || t.Gen != r.gen
}

func (r *Refresher) worker(ticker *time.Ticker, done <-chan struct{}, gen uint64) {
	for {
		select {
		case <-done:
			return
		case at := <-ticker.C:
			select {
			case r.ticks <- Tick{Gen: gen, At: at}:
			case <-done:
				return
			default:
				// consumer has a tick pending already
			}
		}
	}
}
