package field

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTickerLifecycle(t *testing.T) {
	n := 0
	tk := NewTicker(func() { n++ })

	if tk.Tick() {
		t.Fatal("disarmed ticker ran a frame")
	}
	tk.Start()
	tk.Start()
	if !tk.Tick() || !tk.Tick() {
		t.Fatal("armed ticker did not run")
	}
	tk.Stop()
	if tk.Tick() {
		t.Fatal("stopped ticker ran a frame")
	}
	if n != 2 || tk.Frames() != 2 {
		t.Fatalf("frames = %d/%d, want 2", n, tk.Frames())
	}
}

func TestTickerStopFromFrame(t *testing.T) {
	var tk *Ticker
	n := 0
	tk = NewTicker(func() {
		n++
		tk.Stop()
	})
	tk.Start()
	tk.Tick()
	tk.Tick()
	if n != 1 {
		t.Fatalf("frame ran %d times, want 1", n)
	}
}

func TestTickerRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 0
	tk := NewTicker(func() {
		n++
		if n == 3 {
			cancel()
		}
	})
	tk.Start()

	err := tk.Run(ctx, time.Millisecond, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if n != 3 {
		t.Fatalf("frame ran %d times after cancel, want 3", n)
	}
}

func TestTickerRunAppliesEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f := New(1, testPalette)
	tk := NewTicker(f.Step)

	events := make(chan func(), 2)
	events <- func() { f.HandleResize(300, 100) }
	events <- func() {
		f.SetPointer(5, 6)
		cancel()
	}
	close(events)

	if err := tk.Run(ctx, time.Hour, events); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if len(f.Particles) != 2 || f.Pointer != (Vec{5, 6}) {
		t.Fatalf("events not applied: particles=%d pointer=%+v", len(f.Particles), f.Pointer)
	}
	if tk.Frames() != 0 {
		t.Fatalf("disarmed ticker ran %d frames", tk.Frames())
	}
}
