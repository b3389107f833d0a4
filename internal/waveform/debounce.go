package waveform

import (
	"sync"
	"time"
)

// resizeDebounceDelay is the quiet period a resize burst must observe
// before the renderer resyncs and redraws.
const resizeDebounceDelay = 100 * time.Millisecond

// debouncer coalesces a burst of triggers into a single deferred call:
// each trigger cancels any pending call and schedules a fresh one. It is
// safe for concurrent use; the scheduled function runs on a timer
// goroutine.
type debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// trigger schedules fn after the quiet period, replacing any pending
// schedule.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// stop cancels any pending schedule. Idempotent.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
