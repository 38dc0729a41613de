package radar

import (
	"math"
	"time"
)

// FadeIn ramps the chart opacity from 0 to 1 once it first becomes visible.
type FadeIn struct {
	Duration time.Duration
	start    time.Time
	started  bool
}

// NewFadeIn returns a fade that has not been triggered.
func NewFadeIn(d time.Duration) *FadeIn {
	return &FadeIn{Duration: d}
}

// Trigger starts the fade at now. Later calls are ignored.
func (f *FadeIn) Trigger(now time.Time) {
	if f.started {
		return
	}
	f.start = now
	f.started = true
}

// Started reports whether Trigger has been called.
func (f *FadeIn) Started() bool { return f.started }

// Opacity returns the eased opacity at now.
func (f *FadeIn) Opacity(now time.Time) float64 {
	if !f.started {
		return 0
	}
	if f.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(f.start)) / float64(f.Duration)
	return EaseOut(math.Max(0, math.Min(t, 1)))
}

// EaseOut is a cubic ease-out on t in [0,1].
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
