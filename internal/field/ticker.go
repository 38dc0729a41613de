package field

import (
	"context"
	"sync/atomic"
	"time"
)

// Ticker runs a frame callback once per tick while armed. It stands in for
// "run this before the next repaint": a frontend calls Tick from its own loop
// (ebiten's Update) or lets Run drive it from a timer.
type Ticker struct {
	frame  func()
	armed  atomic.Bool
	frames atomic.Uint64
}

// NewTicker returns a disarmed ticker for frame.
func NewTicker(frame func()) *Ticker {
	return &Ticker{frame: frame}
}

// Start arms the ticker.
func (t *Ticker) Start() { t.armed.Store(true) }

// Stop disarms the ticker. A tick that is already queued will not run the frame.
func (t *Ticker) Stop() { t.armed.Store(false) }

// Armed reports whether ticks currently run the frame.
func (t *Ticker) Armed() bool { return t.armed.Load() }

// Frames returns the number of frames run so far.
func (t *Ticker) Frames() uint64 { return t.frames.Load() }

// Tick runs the frame if the ticker is armed and reports whether it did.
func (t *Ticker) Tick() bool {
	if !t.armed.Load() || t.frame == nil {
		return false
	}
	t.frame()
	t.frames.Add(1)
	return true
}

// Run ticks every interval until ctx is done. Closures received on events run
// between frames on the calling goroutine, so event handlers and the frame
// never overlap. Run returns ctx.Err().
func (t *Ticker) Run(ctx context.Context, interval time.Duration, events <-chan func()) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	timer := time.NewTicker(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev != nil {
				ev()
			}
		case <-timer.C:
			// ctx may have been cancelled while this tick was pending
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.Tick()
		}
	}
}
