// Package clockd drives the engine's logical tick counter from a real
// monotonic time source, and runs the periodic TTL sweep. The engine itself
// never reads a clock (internal/engine/tree.Tree.AdvanceClock takes its tick
// from whoever calls it); this package is the one production caller that
// does, so the engine's tests can keep advancing a fake clock by hand while
// a real deployment gets ticks from the OS.
package clockd

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock is the subset of tree.Tree a Ticker drives.
type Clock interface {
	AdvanceClock(now uint64)
	EvictExpired() int
}

// Ticker advances a Clock's logical tick once per Resolution, setting it to
// the number of whole seconds elapsed since the Ticker started, and runs
// EvictExpired after every advance until it reports no more expired keys.
type Ticker struct {
	clock      Clock
	resolution time.Duration
	startNanos int64
	running    atomic.Bool
}

// New returns a Ticker that advances clock once per resolution. resolution
// must be positive.
func New(clock Clock, resolution time.Duration) *Ticker {
	return &Ticker{clock: clock, resolution: resolution}
}

// Run blocks, advancing the clock once per tick until ctx is cancelled. Run
// is not reentrant: calling it again while a previous call is still running
// is a programming error and panics.
func (t *Ticker) Run(ctx context.Context) {
	if !t.running.CompareAndSwap(false, true) {
		panic("clockd: Ticker.Run called while already running")
	}
	defer t.running.Store(false)

	t.startNanos = monotonicNanos()
	ticker := time.NewTicker(t.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.advance()
		}
	}
}

func (t *Ticker) advance() {
	elapsed := monotonicNanos() - t.startNanos
	tick := uint64(elapsed / int64(time.Second))
	t.clock.AdvanceClock(tick)

	for t.clock.EvictExpired() > 0 {
	}
}
