package session

import (
	"sync"
	"time"

	"github.com/colorbook-app/lineart/internal/pipeline"
)

// DefaultWindow is the quiescence window used when a Debouncer is created
// with a non-positive one. ~150ms keeps a dragged slider responsive
// without rendering on every input event.
const DefaultWindow = 150 * time.Millisecond

// Debouncer coalesces rapid render requests so the pipeline runs at most
// once per quiescence window, always with the most recent settings.
//
// Each Request overwrites the pending settings and restarts the window;
// when it elapses the callback fires once with whatever arrived last.
// Results of superseded requests are never produced at all, so callers
// have nothing to cancel or discard.
//
// Debouncer is safe for concurrent use. The callback runs on a timer
// goroutine and must synchronize its own state.
type Debouncer struct {
	window time.Duration
	fn     func(pipeline.Settings)

	mu      sync.Mutex
	timer   *time.Timer
	pending pipeline.Settings
}

// NewDebouncer creates a debouncer that invokes fn with the latest
// requested settings after each quiescence window.
func NewDebouncer(window time.Duration, fn func(pipeline.Settings)) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window, fn: fn}
}

// Request records the latest settings and restarts the quiescence timer.
func (d *Debouncer) Request(s pipeline.Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = s
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	s := d.pending
	d.timer = nil
	d.mu.Unlock()
	d.fn(s)
}

// Flush invokes the callback immediately if a request is pending.
// Download actions use it so the export never waits out the window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil || !d.timer.Stop() {
		d.mu.Unlock()
		return
	}
	s := d.pending
	d.timer = nil
	d.mu.Unlock()
	d.fn(s)
}

// Stop cancels any pending invocation without firing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
